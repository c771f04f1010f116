package items

const (
	selectItems = `
		SELECT i.id, i.kind, i.title, i.description, i.user_id,
		       c.id, c.name, COALESCE(c.description, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''),
		       COALESCE(i.location, ''), i.latitude, i.longitude, i.occurred_at, i.reward_amount,
		       COALESCE(i.contact_info, ''), i.images, i.status,
		       ARRAY(
		           SELECT t.name FROM item_tags it
		           JOIN tags t ON t.id = it.tag_id
		           WHERE it.item_id = i.id
		           ORDER BY t.name
		       ),
		       u.id, u.username, COALESCE(u.full_name, ''), u.reputation_score, u.is_verified,
		       i.created_at, i.updated_at
		FROM items i
		JOIN categories c ON c.id = i.category_id
		JOIN users u ON u.id = i.user_id
	`

	queryGet = selectItems + `
		WHERE i.kind = $1 AND i.id = $2
	`

	queryListCandidates = selectItems + `
		WHERE i.kind = $1 AND i.status = $2
		ORDER BY i.created_at DESC
	`

	queryListByUser = selectItems + `
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC
	`

	queryInsert = `
		INSERT INTO items (
			kind, title, description, user_id, category_id, location, latitude, longitude,
			occurred_at, reward_amount, contact_info, images, status
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, NULLIF($11, ''), $12, $13)
		RETURNING id
	`

	queryAttachTag = `
		WITH tag AS (
			INSERT INTO tags (name) VALUES ($2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		)
		INSERT INTO item_tags (item_id, tag_id)
		SELECT $1::uuid, id FROM tag
		ON CONFLICT DO NOTHING
	`

	queryOwner = `
		SELECT user_id
		FROM items
		WHERE kind = $1 AND id = $2
	`

	queryUpdateStatus = `
		UPDATE items
		SET status = $1, updated_at = NOW()
		WHERE kind = $2 AND id = $3
	`
)
