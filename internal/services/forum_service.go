package services

import (
	"database/sql"
	"fmt"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// ForumServiceProvider defines the interface for forum post services.
type ForumServiceProvider interface {
	GetAllPosts() ([]models.ForumPost, error)
	GetPostByID(id string) (models.ForumPost, error)
	CreatePost(post models.ForumPost) (models.ForumPost, error)
	UpdatePost(id string, post models.ForumPost) (models.ForumPost, error)
	DeletePost(id string) error
}

// ForumService provides business logic for the community forum.
type ForumService struct {
	db *sql.DB
}

// NewForumService creates a new ForumService.
func NewForumService(db *sql.DB) *ForumService {
	return &ForumService{db: db}
}

// Posts carry their author's name and role, joined from users.
const forumQuery = `
	SELECT p.id, p.user_id, p.title, p.content, p.tags_json, p.upvotes, p.expert_replies, p.created_at,
	       u.name, u.role
	FROM forum_posts p
	JOIN users u ON u.id = p.user_id`

func scanPost(scanner interface{ Scan(...interface{}) error }) (models.ForumPost, error) {
	var post models.ForumPost
	var tags sql.NullString
	var author models.PostAuthor
	err := scanner.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &tags,
		&post.Upvotes, &post.ExpertReplies, &post.CreatedAt, &author.Name, &author.Role)
	if err != nil {
		return post, err
	}
	post.TagsJSON = tags.String
	post.Author = &author
	post.PrepareForAPI()
	return post, nil
}

// GetAllPosts lists every forum post with its author, newest first.
func (s *ForumService) GetAllPosts() ([]models.ForumPost, error) {
	rows, err := s.db.Query(forumQuery + " ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.ForumPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPostByID retrieves a single post with its author.
func (s *ForumService) GetPostByID(id string) (models.ForumPost, error) {
	row := s.db.QueryRow(forumQuery+" WHERE p.id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.ForumPost{}, fmt.Errorf("forum post %s: %w", id, ErrNotFound)
		}
		return models.ForumPost{}, err
	}
	return post, nil
}

// CreatePost adds a new post. The caller sets UserID from the authenticated
// identity, never from the request body.
func (s *ForumService) CreatePost(post models.ForumPost) (models.ForumPost, error) {
	post.ID = uuid.New().String()
	post.PrepareForSave()

	stmt, err := s.db.Prepare("INSERT INTO forum_posts(id, user_id, title, content, tags_json, upvotes, expert_replies) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.ForumPost{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(post.ID, post.UserID, post.Title, post.Content, post.TagsJSON, post.Upvotes, post.ExpertReplies)
	if err != nil {
		return models.ForumPost{}, err
	}
	return s.GetPostByID(post.ID)
}

// UpdatePost updates a post's content fields. Ownership is checked by the
// handler against the stored post before this is called.
func (s *ForumService) UpdatePost(id string, post models.ForumPost) (models.ForumPost, error) {
	post.PrepareForSave()

	res, err := s.db.Exec("UPDATE forum_posts SET title = ?, content = ?, tags_json = ?, upvotes = ?, expert_replies = ? WHERE id = ?",
		post.Title, post.Content, post.TagsJSON, post.Upvotes, post.ExpertReplies, id)
	if err != nil {
		return models.ForumPost{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ForumPost{}, fmt.Errorf("forum post %s: %w", id, ErrNotFound)
	}
	return s.GetPostByID(id)
}

// DeletePost removes a post.
func (s *ForumService) DeletePost(id string) error {
	res, err := s.db.Exec("DELETE FROM forum_posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("forum post %s: %w", id, ErrNotFound)
	}
	return nil
}
