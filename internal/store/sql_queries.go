package store

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`
)

// documentColumns is the canonical column list of the documents table,
// shared by the squirrel-built queries in repository_document.go.
var documentColumns = []string{"id", "text", "source", "category", "filename", "chunk", "created_at"}
