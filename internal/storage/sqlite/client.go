package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/storage/models"
	"github.com/healthbot/backend/pkg/logger"
)

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		phone TEXT,
		age INTEGER,
		gender TEXT,
		location TEXT,
		preferred_language TEXT NOT NULL DEFAULT 'en',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'en',
		created_at INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_user ON interactions(user_id);
	CREATE INDEX IF NOT EXISTS idx_interactions_created ON interactions(created_at);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

func (c *Client) GetUser(id int64) (*models.User, error) {
	query := `
		SELECT id, username, email, full_name, phone, age, gender, location,
			preferred_language, is_active, created_at
		FROM users WHERE id = ?
	`

	var u models.User
	var phone, gender, location sql.NullString
	var age sql.NullInt64
	var isActive int
	var createdAt int64

	err := c.db.QueryRow(query, id).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&phone,
		&age,
		&gender,
		&location,
		&u.PreferredLanguage,
		&isActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u.Phone = phone.String
	u.Age = int(age.Int64)
	u.Gender = gender.String
	u.Location = location.String
	u.IsActive = isActive != 0
	u.CreatedAt = time.Unix(createdAt, 0)

	return &u, nil
}

func (c *Client) UpdateUserProfile(id int64, update models.ProfileUpdate) error {
	sets := []string{}
	args := []interface{}{}

	if update.FullName != nil {
		sets = append(sets, "full_name = ?")
		args = append(args, *update.FullName)
	}
	if update.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.Age != nil {
		sets = append(sets, "age = ?")
		args = append(args, *update.Age)
	}
	if update.Gender != nil {
		sets = append(sets, "gender = ?")
		args = append(args, *update.Gender)
	}
	if update.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *update.Location)
	}
	if update.PreferredLanguage != nil {
		sets = append(sets, "preferred_language = ?")
		args = append(args, *update.PreferredLanguage)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))

	res, err := c.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}

	logger.Debug("User profile updated", zap.Int64("user_id", id))
	return nil
}

// AppendInteraction writes one exchange and returns the storage-assigned id.
func (c *Client) AppendInteraction(userID int64, message, response, language string) (int64, error) {
	query := `
		INSERT INTO interactions (user_id, message, response, language, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := c.db.Exec(query, userID, message, response, language, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to append interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to append interaction: %w", err)
	}

	logger.Info("Interaction recorded",
		zap.Int64("interaction_id", id),
		zap.Int64("user_id", userID),
		zap.String("language", language),
	)

	return id, nil
}

func (c *Client) ListInteractions(userID int64, limit int) ([]models.Interaction, error) {
	query := `
		SELECT id, user_id, message, response, language, created_at
		FROM interactions
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := c.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var records []models.Interaction
	for rows.Next() {
		var r models.Interaction
		var createdAt int64

		err := rows.Scan(&r.ID, &r.UserID, &r.Message, &r.Response, &r.Language, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	return records, nil
}

// SeedDemoUser inserts a single active user for local development. No-op if
// the row already exists.
func (c *Client) SeedDemoUser() (int64, error) {
	query := `
		INSERT OR IGNORE INTO users (username, email, full_name, preferred_language, is_active, created_at)
		VALUES ('demo', 'demo@example.com', 'Demo User', 'en', 1, ?)
	`

	_, err := c.db.Exec(query, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to seed demo user: %w", err)
	}

	var id int64
	err = c.db.QueryRow(`SELECT id FROM users WHERE username = 'demo'`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to seed demo user: %w", err)
	}

	logger.Info("Demo user available", zap.Int64("user_id", id))
	return id, nil
}
