// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the session store, the API access layer, the client services,
// the background refresh worker and the terminal UI into one process
// lifecycle.
package client
