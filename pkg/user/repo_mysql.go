package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const errDupEntry = 1062

// Length limits in characters. A username is stored as up to 200 bytes
// of UTF-8, which holds 50 characters of any width.
const (
	MaxUsernameLen    = 50
	MaxDisplayNameLen = 100
)

var ErrDuplicateUsername = errors.New("username already exists")

// Schema keeps usernames binary: the unique index compares them byte for
// byte, so "root", "Root" and "root " are different users.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		username VARBINARY(200) NOT NULL,
		display_name VARCHAR(100) NOT NULL DEFAULT '',
		password VARBINARY(100) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY users_username (username)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS user_blogs (
		id bigint(20) unsigned NOT NULL AUTO_INCREMENT,
		user_id int(11) unsigned NOT NULL,
		blog_id CHAR(24) NOT NULL,
		PRIMARY KEY (id),
		KEY user_blogs_user (user_id),
		KEY user_blogs_blog (blog_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4;`,
}

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

// Migrate creates the tables when they are missing.
func (repo *UserRepoSQL) Migrate(ctx context.Context) error {
	for _, stmt := range Schema {
		if _, err := repo.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func (repo *UserRepoSQL) GetByID(ctx context.Context, id int64) (*User, error) {
	query := "SELECT `id`, `username`, `display_name`, `password` FROM users WHERE id = ?"
	return repo.getOne(ctx, query, id)
}

func (repo *UserRepoSQL) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := "SELECT `id`, `username`, `display_name`, `password` FROM users WHERE username = ?"
	return repo.getOne(ctx, query, username)
}

// GetAll returns every user without credentials, blogs attached.
func (repo *UserRepoSQL) GetAll(ctx context.Context) ([]*User, error) {
	rows, err := repo.db.QueryContext(ctx, "SELECT `id`, `username`, `display_name` FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*User, 0)
	byID := make(map[int64]*User)
	for rows.Next() {
		u := &User{Blogs: []string{}}
		if err = rows.Scan(&u.ID, &u.Username, &u.DisplayName); err != nil {
			return nil, err
		}
		users = append(users, u)
		byID[u.ID] = u
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	blogRows, err := repo.db.QueryContext(ctx, "SELECT `user_id`, `blog_id` FROM user_blogs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer blogRows.Close()

	for blogRows.Next() {
		var userID int64
		var blogID string
		if err = blogRows.Scan(&userID, &blogID); err != nil {
			return nil, err
		}
		if u, ok := byID[userID]; ok {
			u.Blogs = append(u.Blogs, blogID)
		}
	}

	return users, blogRows.Err()
}

// Add inserts the user. Username uniqueness is enforced by the unique
// index, so concurrent registrations cannot both succeed.
func (repo *UserRepoSQL) Add(ctx context.Context, user *User) (int64, error) {
	query := "INSERT INTO users (`username`, `display_name`, `password`) VALUES (?, ?, ?)"
	r, err := repo.db.ExecContext(ctx, query, user.Username, user.DisplayName, user.Password)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDupEntry {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

func (repo *UserRepoSQL) AppendBlog(ctx context.Context, userID int64, blogID string) error {
	_, err := repo.db.ExecContext(ctx, "INSERT INTO user_blogs (`user_id`, `blog_id`) VALUES (?, ?)", userID, blogID)
	return err
}

func (repo *UserRepoSQL) DetachBlog(ctx context.Context, blogID string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM user_blogs WHERE blog_id = ?", blogID)
	return err
}

func (repo *UserRepoSQL) getOne(ctx context.Context, query string, arg interface{}) (*User, error) {
	u := User{}
	err := repo.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.DisplayName, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.Blogs, err = repo.blogIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) blogIDs(ctx context.Context, userID int64) ([]string, error) {
	rows, err := repo.db.QueryContext(ctx, "SELECT `blog_id` FROM user_blogs WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
