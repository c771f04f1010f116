package categories

const (
	queryList = `
		SELECT id, name, COALESCE(description, ''), COALESCE(icon, ''), COALESCE(color, '')
		FROM categories
		ORDER BY name
	`

	queryCreate = `
		INSERT INTO categories (name, description, icon, color)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), COALESCE(NULLIF($4, ''), '#000000'))
		RETURNING id, name, COALESCE(description, ''), COALESCE(icon, ''), COALESCE(color, '')
	`

	queryInsertIfMissing = `
		INSERT INTO categories (name, description, icon, color)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`

	queryListTags = `
		SELECT id, name
		FROM tags
		ORDER BY name
	`
)
