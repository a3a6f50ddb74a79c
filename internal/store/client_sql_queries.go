// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (id, user_id, name, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			name     = excluded.name,
			email    = excluded.email,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT user_id, name, email, token
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
