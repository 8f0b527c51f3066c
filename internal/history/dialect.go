package history

type dialect struct {
	driver      string
	createTable string
	insert      string
	recent      string
	returningID bool
}

var sqliteDialect = dialect{
	driver: "sqlite3",
	createTable: `CREATE TABLE IF NOT EXISTS transcript (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session INTEGER NOT NULL,
	source TEXT NOT NULL,
	result TEXT NOT NULL,
	failure TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`,
	insert: `INSERT INTO transcript (session, source, result, failure, created_at) VALUES (?, ?, ?, ?, ?)`,
	recent: `SELECT id, session, source, result, failure, created_at FROM transcript ORDER BY id DESC LIMIT ?`,
}

// mysql needs parseTime=true in the DSN to scan created_at into time.Time.
var mysqlDialect = dialect{
	driver: "mysql",
	createTable: `CREATE TABLE IF NOT EXISTS transcript (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	session BIGINT NOT NULL,
	source TEXT NOT NULL,
	result TEXT NOT NULL,
	failure TEXT NOT NULL,
	created_at DATETIME(6) NOT NULL
)`,
	insert: `INSERT INTO transcript (session, source, result, failure, created_at) VALUES (?, ?, ?, ?, ?)`,
	recent: `SELECT id, session, source, result, failure, created_at FROM transcript ORDER BY id DESC LIMIT ?`,
}

var postgresDialect = dialect{
	driver: "postgres",
	createTable: `CREATE TABLE IF NOT EXISTS transcript (
	id BIGSERIAL PRIMARY KEY,
	session BIGINT NOT NULL,
	source TEXT NOT NULL,
	result TEXT NOT NULL,
	failure TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`,
	insert:      `INSERT INTO transcript (session, source, result, failure, created_at) VALUES ($1, $2, $3, $4, $5)`,
	recent:      `SELECT id, session, source, result, failure, created_at FROM transcript ORDER BY id DESC LIMIT $1`,
	returningID: true,
}
