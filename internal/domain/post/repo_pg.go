package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a PostgreSQL-backed post repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const postCols = `id, title, body, author, published, created_at, updated_at`

func (r *repoPG) scanPost(row pgx.Row) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Author, &p.Published,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Post) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO posts (id, title, body, author, published)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.Title, p.Body, p.Author, p.Published)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	p, err := r.scanPost(r.conn(ctx).QueryRow(ctx,
		`SELECT `+postCols+` FROM posts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("post %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Post) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE posts SET title=$2, body=$3, published=$4, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Body, p.Published)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s not found", p.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s not found", id)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Post, int, error) {
	where := ""
	if publishedOnly {
		where = ` WHERE published`
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM posts`+where).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+postCols+` FROM posts`+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Post
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}
