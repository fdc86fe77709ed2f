package identity

const (
	// ids are stored and compared as exact strings, case included.
	CreateTable = `
		CREATE TABLE IF NOT EXISTS identities (
			id            text COLLATE "C" PRIMARY KEY,
			primary_email text NULL,
			created_at    timestamptz NOT NULL,
			updated_at    timestamptz NULL,
			deleted       boolean NOT NULL DEFAULT false,
			deleted_at    timestamptz NULL,
			version       bigint NOT NULL DEFAULT 0
		)
	`
	UpsertIdentity = `
		INSERT INTO identities (id, primary_email, created_at, updated_at, deleted, deleted_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET primary_email = EXCLUDED.primary_email,
		    created_at = EXCLUDED.created_at,
		    updated_at = EXCLUDED.updated_at,
		    deleted = EXCLUDED.deleted,
		    deleted_at = EXCLUDED.deleted_at,
		    version = EXCLUDED.version
	`
	SelectIdentityByID = `
		SELECT id, primary_email, created_at, updated_at, deleted, deleted_at, version
		FROM identities
		WHERE id = $1
	`
	SelectIdentities = `
		SELECT id, primary_email, created_at, updated_at, deleted, deleted_at, version
		FROM identities
		ORDER BY created_at, id
	`
	DeleteIdentityByID = `DELETE FROM identities WHERE id = $1`
)
