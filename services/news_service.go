package services

import (
	"errors"
	"strings"
	"time"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"

	"gorm.io/gorm"
)

// NewsRequest carries an article submission.
type NewsRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"fullDescription"`
	Author          string     `json:"author"`
	Image           string     `json:"image"`
	Date            *time.Time `json:"date"`
}

// ListNews returns visible articles, newest publish date first, together with
// the per-status breakdown.
func ListNews() ([]models.News, models.NewsStats, error) {
	var news []models.News
	err := global.Db.Where("visible = ?", true).
		Order("date DESC, id DESC").
		Find(&news).Error
	if err != nil {
		return nil, models.NewsStats{}, apperrors.Service("failed to list news", err)
	}

	stats := models.NewsStats{Total: int64(len(news))}
	for _, n := range news {
		switch n.Status {
		case models.StatusVerified:
			stats.Verified++
		case models.StatusFake:
			stats.Fake++
		default:
			stats.Unverified++
		}
	}
	return news, stats, nil
}

func GetNews(id uint) (*models.News, error) {
	var news models.News
	err := global.Db.Where("visible = ?", true).First(&news, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("news not found")
		}
		return nil, apperrors.Service("failed to load news", err)
	}
	return &news, nil
}

// CreateNews stores a new article. The store assigns the id; counters start
// at zero and the status starts Unverified until the first recompute.
func CreateNews(req NewsRequest) (*models.News, error) {
	if req.Title == "" {
		return nil, apperrors.Validation("title", "title is required")
	}
	if req.Author == "" {
		return nil, apperrors.Validation("author", "author is required")
	}
	if req.Date == nil {
		return nil, apperrors.Validation("date", "date is required")
	}

	news := models.News{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Author:          req.Author,
		Image:           req.Image,
		Date:            *req.Date,
		Status:          models.StatusUnverified,
		Visible:         true,
	}
	if err := global.Db.Create(&news).Error; err != nil {
		return nil, apperrors.Service("failed to create news", err)
	}
	return &news, nil
}

// SearchNews retrieves visible articles whose title or description contains
// every keyword of the query.
func SearchNews(query string) ([]models.News, error) {
	keywords := strings.Fields(query)
	if len(keywords) == 0 {
		news, _, err := ListNews()
		return news, err
	}

	q := global.Db.Model(&models.News{}).Where("visible = ?", true)
	for _, kw := range keywords {
		q = q.Where("title LIKE ? OR description LIKE ?", "%"+kw+"%", "%"+kw+"%")
	}

	var news []models.News
	if err := q.Order("date DESC, id DESC").Find(&news).Error; err != nil {
		return nil, apperrors.Service("failed to search news", err)
	}
	return news, nil
}

// SetNewsVisibility hides or shows an article. Hidden articles drop out of
// listings and reject further votes; their ledger rows stay untouched.
func SetNewsVisibility(id uint, visible bool) (*models.News, error) {
	var news models.News
	if err := global.Db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("news not found")
		}
		return nil, apperrors.Service("failed to load news", err)
	}

	if err := global.Db.Model(&news).Update("visible", visible).Error; err != nil {
		return nil, apperrors.Service("failed to update news visibility", err)
	}
	news.Visible = visible
	return &news, nil
}
