package services

import (
	"strings"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// ReasonRequiredFields is reported when a public submission lacks a name,
// email or message.
const ReasonRequiredFields = "please fill in all required fields"

type ContactService struct {
	db    *gorm.DB
	queue TaskQueue
	hub   *SSEHub
}

// NewContactService wires optional side effects: queue receives a
// notification task per stored message, hub receives inbox events.
func NewContactService(db *gorm.DB, queue TaskQueue, hub *SSEHub) *ContactService {
	return &ContactService{db: db, queue: queue, hub: hub}
}

type SubmitContactRequest struct {
	Name    string `form:"name" json:"name" binding:"max=150"`
	Email   string `form:"email" json:"email" binding:"max=255"`
	Subject string `form:"subject" json:"subject" binding:"max=200"`
	Message string `form:"message" json:"message" binding:"max=5000"`
}

type ContactListRequest struct {
	ListRequest
	Status string `form:"status" binding:"omitempty,oneof=read unread all"`
	Search string `form:"search"`
}

// Submit trims the fields, rejects a submission without name, email or
// message, and stores the rest unread.
func (s *ContactService) Submit(req *SubmitContactRequest, ip string) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		IP:      ip,
	}

	switch {
	case msg.Name == "":
		return nil, &models.ValidationError{Field: "name", Reason: ReasonRequiredFields}
	case msg.Email == "":
		return nil, &models.ValidationError{Field: "email", Reason: ReasonRequiredFields}
	case msg.Message == "":
		return nil, &models.ValidationError{Field: "message", Reason: ReasonRequiredFields}
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	s.publish("created", &msg)

	if s.queue != nil {
		if err := s.queue.Enqueue(&ContactNotifyTask{MessageID: msg.ID}); err != nil {
			logger.Errorf("[Contact] Failed to enqueue notification for message %d: %v", msg.ID, err)
		}
	}

	return &msg, nil
}

func (s *ContactService) List(req *ContactListRequest) ([]models.ContactMessage, int64, error) {
	req.normalize(20)

	query := s.db.Model(&models.ContactMessage{})
	switch req.Status {
	case "read":
		query = query.Where("is_read = ?", true)
	case "unread":
		query = query.Where("is_read = ?", false)
	}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ? OR message LIKE ?", like, like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.ContactMessage
	if err := query.Order("created_at DESC").Order("id DESC").
		Offset(req.offset()).Limit(req.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ContactService) GetByID(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *ContactService) SetRead(id uint, read bool) (*models.ContactMessage, error) {
	msg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if msg.IsRead == read {
		return msg, nil
	}
	if err := s.db.Model(msg).Update("is_read", read).Error; err != nil {
		return nil, err
	}
	msg.IsRead = read
	s.publish("updated", msg)
	return msg, nil
}

func (s *ContactService) ToggleRead(id uint) (*models.ContactMessage, error) {
	msg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.SetRead(id, !msg.IsRead)
}

func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.publish("deleted", &models.ContactMessage{ID: id})
	return nil
}

func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (s *ContactService) publish(kind string, msg *models.ContactMessage) {
	if s.hub == nil {
		return
	}
	unread, err := s.UnreadCount()
	if err != nil {
		logger.Warnf("[Contact] Failed to count unread messages: %v", err)
	}
	s.hub.Publish(MessageEvent{
		Type:    kind,
		ID:      msg.ID,
		Name:    msg.Name,
		Subject: msg.Subject,
		IsRead:  msg.IsRead,
		Unread:  unread,
	})
}
