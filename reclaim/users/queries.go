package users

const userColumns = `
	id, username, email, COALESCE(full_name, ''), COALESCE(profile_picture, ''),
	COALESCE(phone, ''), COALESCE(bio, ''), COALESCE(location, ''),
	reputation_score, is_verified, created_at
`

const (
	queryFindOrCreateByEmail = `
		INSERT INTO users (username, email, full_name)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING` + userColumns

	queryFindByID = `
		SELECT` + userColumns + `
		FROM users
		WHERE id = $1
	`

	// absent fields arrive as NULL and keep the stored value
	queryUpdateProfile = `
		UPDATE users
		SET full_name = COALESCE($2::text, full_name),
			phone = COALESCE($3::text, phone),
			bio = COALESCE($4::text, bio),
			location = COALESCE($5::text, location)
		WHERE id = $1
		RETURNING` + userColumns

	queryFindProfile = `
		SELECT id, username, COALESCE(full_name, ''), COALESCE(profile_picture, ''),
			COALESCE(bio, ''), COALESCE(location, ''), reputation_score, is_verified, created_at
		FROM users
		WHERE id = $1
	`
)
