package claims

const (
	selectClaims = `
		SELECT c.id, c.lost_item_id, c.found_item_id, c.claimant_id, c.message, c.status,
		       u.id, u.username, COALESCE(u.full_name, ''), u.reputation_score, u.is_verified,
		       c.created_at, c.updated_at
		FROM claims c
		JOIN users u ON u.id = c.claimant_id
	`

	queryGet = selectClaims + `
		WHERE c.id = $1
	`

	queryListForLost = selectClaims + `
		WHERE c.lost_item_id = $1
		ORDER BY c.created_at DESC
	`

	queryListForFound = selectClaims + `
		WHERE c.found_item_id = $1
		ORDER BY c.created_at DESC
	`

	queryInsert = `
		INSERT INTO claims (lost_item_id, found_item_id, claimant_id, message, status)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::text
		WHERE ($1::uuid IS NULL OR EXISTS (SELECT 1 FROM items WHERE id = $1 AND kind = 'lost'))
		  AND ($2::uuid IS NULL OR EXISTS (SELECT 1 FROM items WHERE id = $2 AND kind = 'found'))
		RETURNING id
	`
)
