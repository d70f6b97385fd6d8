package store

// SQL query constants. Flowers are kept as JSONB documents in the
// flowers collection table; PostgresStore methods reference these constants.
const (
	// ~* is a case-insensitive POSIX regex match. $1 is the pattern built by
	// ContainsPattern.
	queryFindFlower = `
		SELECT
			COALESCE(doc->>'flowername', ''),
			COALESCE(doc->>'flowername_kr', ''),
			COALESCE(doc->>'habitat', ''),
			COALESCE(doc->>'binomialName', ''),
			COALESCE(doc->>'classification', '')
		FROM flowers
		WHERE doc->>'flowername' ~* $1
			OR doc->>'flowername_kr' ~* $1
		ORDER BY id
		LIMIT 1`

	queryInsertFlower = `
		INSERT INTO flowers (doc) VALUES ($1)`
)
