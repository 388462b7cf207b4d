package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// ResearchServiceProvider defines the interface for research update services.
type ResearchServiceProvider interface {
	GetPublishedUpdates() ([]models.ResearchUpdate, error)
	GetUpdateByID(id string) (models.ResearchUpdate, error)
	CreateUpdate(update models.ResearchUpdate) (models.ResearchUpdate, error)
	UpdateUpdate(id string, update models.ResearchUpdate) (models.ResearchUpdate, error)
	DeleteUpdate(id string) error
}

// ResearchService provides business logic for research articles.
type ResearchService struct {
	db *sql.DB
}

// NewResearchService creates a new ResearchService.
func NewResearchService(db *sql.DB) *ResearchService {
	return &ResearchService{db: db}
}

const researchColumns = "id, title, summary, content, author, category, tags_json, image_url, published_date, is_published, read_time, views, likes"

func scanResearch(scanner interface{ Scan(...interface{}) error }) (models.ResearchUpdate, error) {
	var update models.ResearchUpdate
	var tags, imageURL sql.NullString
	err := scanner.Scan(
		&update.ID, &update.Title, &update.Summary, &update.Content, &update.Author,
		&update.Category, &tags, &imageURL, &update.PublishedDate,
		&update.IsPublished, &update.ReadTime, &update.Views, &update.Likes,
	)
	if err != nil {
		return update, err
	}
	update.TagsJSON = tags.String
	update.ImageURL = imageURL.String
	update.PrepareForAPI()
	return update, nil
}

// GetPublishedUpdates lists published research, newest first.
func (s *ResearchService) GetPublishedUpdates() ([]models.ResearchUpdate, error) {
	rows, err := s.db.Query("SELECT " + researchColumns + " FROM research_updates WHERE is_published = 1 ORDER BY published_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []models.ResearchUpdate
	for rows.Next() {
		update, err := scanResearch(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, rows.Err()
}

// GetUpdateByID retrieves a single article and counts the read.
func (s *ResearchService) GetUpdateByID(id string) (models.ResearchUpdate, error) {
	res, err := s.db.Exec("UPDATE research_updates SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return models.ResearchUpdate{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ResearchUpdate{}, fmt.Errorf("research update %s: %w", id, ErrNotFound)
	}

	row := s.db.QueryRow("SELECT "+researchColumns+" FROM research_updates WHERE id = ?", id)
	return scanResearch(row)
}

// CreateUpdate adds a new research article.
func (s *ResearchService) CreateUpdate(update models.ResearchUpdate) (models.ResearchUpdate, error) {
	update.ID = uuid.New().String()
	if update.Category == "" {
		update.Category = "Other"
	}
	if update.ReadTime == 0 {
		update.ReadTime = 5
	}
	if update.PublishedDate.IsZero() {
		update.PublishedDate = time.Now()
	}
	update.IsPublished = true
	update.PrepareForSave()

	stmt, err := s.db.Prepare(`INSERT INTO research_updates
		(id, title, summary, content, author, category, tags_json, image_url, published_date, is_published, read_time, views, likes)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?, ?)`)
	if err != nil {
		return models.ResearchUpdate{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(update.ID, update.Title, update.Summary, update.Content, update.Author,
		update.Category, update.TagsJSON, update.ImageURL, update.PublishedDate,
		update.ReadTime, update.Views, update.Likes)
	if err != nil {
		return models.ResearchUpdate{}, err
	}
	return update, nil
}

// UpdateUpdate updates an existing research article.
func (s *ResearchService) UpdateUpdate(id string, update models.ResearchUpdate) (models.ResearchUpdate, error) {
	update.PrepareForSave()

	res, err := s.db.Exec(`UPDATE research_updates SET
		title = ?, summary = ?, content = ?, author = ?, category = ?, tags_json = ?,
		image_url = ?, is_published = ?, read_time = ?
		WHERE id = ?`,
		update.Title, update.Summary, update.Content, update.Author, update.Category, update.TagsJSON,
		update.ImageURL, update.IsPublished, update.ReadTime, id)
	if err != nil {
		return models.ResearchUpdate{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ResearchUpdate{}, fmt.Errorf("research update %s: %w", id, ErrNotFound)
	}

	row := s.db.QueryRow("SELECT "+researchColumns+" FROM research_updates WHERE id = ?", id)
	return scanResearch(row)
}

// DeleteUpdate removes a research article.
func (s *ResearchService) DeleteUpdate(id string) error {
	res, err := s.db.Exec("DELETE FROM research_updates WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("research update %s: %w", id, ErrNotFound)
	}
	return nil
}
