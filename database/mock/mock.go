package mock

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/wbenmachich/portfolio-site-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test helpers and mocks
type Mocks struct {
	Projects      *ProjectRepo
	Experiences   *ExperienceRepo
	Announcements *AnnouncementRepo
	Hero          *HeroRepo
	Messages      *MessageRepo
	Images        *ImageStore
	Mailer        *Mailer
}

func NewMocks() *Mocks {
	return &Mocks{
		Projects:      &ProjectRepo{},
		Experiences:   &ExperienceRepo{},
		Announcements: &AnnouncementRepo{},
		Hero:          &HeroRepo{},
		Messages:      &MessageRepo{},
		Images:        &ImageStore{},
		Mailer:        &Mailer{},
	}
}

type ProjectRepo struct {
	Stored     []*models.Project
	FindAllErr error
	AddErr     error
	UpdateErr  error
	DeleteErr  error
}

func (m *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	if m.FindAllErr != nil {
		return nil, m.FindAllErr
	}
	projects := append([]*models.Project(nil), m.Stored...)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (m *ProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	for _, p := range m.Stored {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	copied := *project
	m.Stored = append(m.Stored, &copied)
	return nil
}

func (m *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i, p := range m.Stored {
		if p.ID == project.ID {
			copied := *project
			m.Stored[i] = &copied
		}
	}
	return nil
}

func (m *ProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	kept := m.Stored[:0]
	for _, p := range m.Stored {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.Stored = kept
	return nil
}

type ExperienceRepo struct {
	Stored []*models.Experience
	AddErr error
}

func (m *ExperienceRepo) FindAll(ctx context.Context) ([]*models.Experience, error) {
	experiences := append([]*models.Experience(nil), m.Stored...)
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].Order < experiences[j].Order
	})
	return experiences, nil
}

func (m *ExperienceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	for _, e := range m.Stored {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *ExperienceRepo) Add(ctx context.Context, experience *models.Experience) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if experience.ID.IsZero() {
		experience.ID = primitive.NewObjectID()
	}
	copied := *experience
	m.Stored = append(m.Stored, &copied)
	return nil
}

func (m *ExperienceRepo) Update(ctx context.Context, experience *models.Experience) error {
	for i, e := range m.Stored {
		if e.ID == experience.ID {
			copied := *experience
			m.Stored[i] = &copied
		}
	}
	return nil
}

func (m *ExperienceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	kept := m.Stored[:0]
	for _, e := range m.Stored {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.Stored = kept
	return nil
}

type AnnouncementRepo struct {
	Stored        []*models.Announcement
	DeactivateErr error
	AddErr        error
}

func (m *AnnouncementRepo) FindActive(ctx context.Context) (*models.Announcement, error) {
	var latest *models.Announcement
	for _, a := range m.Stored {
		if !a.IsActive {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (m *AnnouncementRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	for _, a := range m.Stored {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *AnnouncementRepo) DeactivateAll(ctx context.Context) error {
	if m.DeactivateErr != nil {
		return m.DeactivateErr
	}
	for _, a := range m.Stored {
		a.IsActive = false
	}
	return nil
}

func (m *AnnouncementRepo) Add(ctx context.Context, announcement *models.Announcement) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if announcement.ID.IsZero() {
		announcement.ID = primitive.NewObjectID()
	}
	copied := *announcement
	m.Stored = append(m.Stored, &copied)
	return nil
}

func (m *AnnouncementRepo) Update(ctx context.Context, announcement *models.Announcement) error {
	for i, a := range m.Stored {
		if a.ID == announcement.ID {
			copied := *announcement
			m.Stored[i] = &copied
		}
	}
	return nil
}

func (m *AnnouncementRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	kept := m.Stored[:0]
	for _, a := range m.Stored {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	m.Stored = kept
	return nil
}

type HeroRepo struct {
	Stored    *models.HeroSection
	UpsertErr error
}

func (m *HeroRepo) Find(ctx context.Context) (*models.HeroSection, error) {
	if m.Stored == nil {
		return nil, nil
	}
	copied := *m.Stored
	return &copied, nil
}

func (m *HeroRepo) Upsert(ctx context.Context, fields map[string]string) (*models.HeroSection, error) {
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}
	if m.Stored == nil {
		m.Stored = &models.HeroSection{ID: primitive.NewObjectID()}
	}
	for key, value := range fields {
		switch key {
		case "image":
			m.Stored.Image = value
		case "name":
			m.Stored.Name = value
		case "title":
			m.Stored.Title = value
		case "description":
			m.Stored.Description = value
		}
	}
	copied := *m.Stored
	return &copied, nil
}

type MessageRepo struct {
	Stored []*models.Message
	AddErr error
}

func (m *MessageRepo) FindAll(ctx context.Context) ([]*models.Message, error) {
	messages := append([]*models.Message(nil), m.Stored...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (m *MessageRepo) Add(ctx context.Context, message *models.Message) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	copied := *message
	m.Stored = append(m.Stored, &copied)
	return nil
}

func (m *MessageRepo) SetRead(ctx context.Context, id primitive.ObjectID, read bool) (*models.Message, error) {
	for _, msg := range m.Stored {
		if msg.ID == id {
			msg.Read = read
			copied := *msg
			return &copied, nil
		}
	}
	return nil, nil
}

// ImageStore records uploads and deletion attempts instead of talking to an
// object store. Uploaded URLs are deterministic: base/folder/filename.
type ImageStore struct {
	Uploaded       []string
	UploadErr      error
	DeleteAttempts []string
	DeleteErrs     map[string]error
}

const imageBaseURL = "https://images.test"

func (m *ImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	url := imageBaseURL + "/" + folder + "/" + filename
	m.Uploaded = append(m.Uploaded, url)
	return url, nil
}

func (m *ImageStore) Delete(ctx context.Context, url string) error {
	m.DeleteAttempts = append(m.DeleteAttempts, url)
	if err, ok := m.DeleteErrs[url]; ok {
		return err
	}
	return nil
}

// SentEmail captures one delivery through the mock Mailer.
type SentEmail struct {
	Subject    string
	HTML       string
	Recipients []string
}

// Mailer is safe for concurrent sends; the contact notifier fans out two
// deliveries at once.
type Mailer struct {
	mu      sync.Mutex
	Sent    []SentEmail
	SendErr error
}

func (m *Mailer) Send(ctx context.Context, subject, html string, recipients []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, SentEmail{Subject: subject, HTML: html, Recipients: recipients})
	return nil
}

// SentEmails returns a snapshot of deliveries made so far.
func (m *Mailer) SentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.Sent...)
}
