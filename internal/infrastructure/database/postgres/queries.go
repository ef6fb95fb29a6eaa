package postgres

// DocumentQueries regroupe les requêtes SQL du stockage des collections locales
var DocumentQueries = struct {
	EnsureSchema     string
	List             string
	Find             string
	Upsert           string
	Delete           string
	DeleteCollection string
	Insert           string
}{
	/**
	 * Crée la table des documents si absente
	 * payload est conservé en texte pour relire exactement ce qui a été écrit
	 */
	EnsureSchema: `
		CREATE TABLE IF NOT EXISTS console_documents (
			collection  TEXT        NOT NULL,
			id          TEXT        NOT NULL,
			payload     TEXT        NOT NULL,
			seq         BIGSERIAL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		);
		CREATE INDEX IF NOT EXISTS idx_console_documents_seq
			ON console_documents (collection, seq);
	`,

	/**
	 * Documents d'une collection dans l'ordre d'insertion
	 * Paramètres: $1 = collection
	 */
	List: `
		SELECT id, payload
		FROM console_documents
		WHERE collection = $1
		ORDER BY seq
	`,

	/**
	 * Paramètres: $1 = collection, $2 = id
	 */
	Find: `
		SELECT id, payload
		FROM console_documents
		WHERE collection = $1 AND id = $2
	`,

	/**
	 * Insère ou remplace un document; seq reste celui de la première insertion
	 * Paramètres: $1 = collection, $2 = id, $3 = payload
	 */
	Upsert: `
		INSERT INTO console_documents (collection, id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`,

	/**
	 * Paramètres: $1 = collection, $2 = id
	 */
	Delete: `
		DELETE FROM console_documents
		WHERE collection = $1 AND id = $2
		RETURNING id
	`,

	/**
	 * Vide une collection avant réécriture complète
	 * Paramètres: $1 = collection
	 */
	DeleteCollection: `
		DELETE FROM console_documents
		WHERE collection = $1
	`,

	/**
	 * Paramètres: $1 = collection, $2 = id, $3 = payload
	 */
	Insert: `
		INSERT INTO console_documents (collection, id, payload)
		VALUES ($1, $2, $3)
	`,
}
