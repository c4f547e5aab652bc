package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adityavk/portfolio-server/internal/auth"
	"github.com/adityavk/portfolio-server/internal/config"
	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repositories.Migrate(db))
	return db
}

// fakeMediaStore records uploads and deletions; Upload is called from
// concurrent goroutines during registration.
type fakeMediaStore struct {
	mu       sync.Mutex
	uploads  []string
	deleted  []string
	failNext bool
}

func (f *fakeMediaStore) Upload(ctx context.Context, body io.Reader, filename, folder string) (models.MediaRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return models.MediaRef{}, errors.New("upload failed")
	}
	id := folder + "/" + filename
	f.uploads = append(f.uploads, id)
	return models.MediaRef{PublicID: id, URL: "https://media.test/" + id}, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func newUserHandler(t *testing.T) (*UserHandler, *fakeMediaStore, *fakeMailer) {
	t.Helper()
	media := &fakeMediaStore{}
	mail := &fakeMailer{}
	h := &UserHandler{
		DB:     setupTestDB(t),
		Tokens: auth.NewTokenIssuer("test-secret", time.Hour),
		Media:  media,
		Mailer: mail,
		Cfg: &config.Config{
			PortfolioURL: "https://portfolio.test",
		},
	}
	return h, media, mail
}

// createTestUser inserts a registered owner with the given credentials.
func createTestUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		FullName:     "Test Owner",
		Email:        email,
		Phone:        "1234567890",
		AboutMe:      "About the owner",
		Password:     hash,
		Avatar:       models.MediaRef{PublicID: "AVATARS/old-avatar.png", URL: "https://media.test/AVATARS/old-avatar.png"},
		Resume:       models.MediaRef{PublicID: "MY_RESUME/old-resume.pdf", URL: "https://media.test/MY_RESUME/old-resume.pdf"},
		PortfolioURL: "https://portfolio.test",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// registerForm builds a multipart body holding the required registration
// fields plus avatar and resume files.
func registerForm(t *testing.T, overrides map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	fields := map[string]string{
		"fullname":     "Test Owner",
		"email":        "a@x.com",
		"phone":        "1234567890",
		"aboutMe":      "About the owner",
		"password":     "pw123456",
		"portfolioUrl": "https://portfolio.test",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}

	avatar, err := writer.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = avatar.Write([]byte("fake-png"))
	require.NoError(t, err)

	resume, err := writer.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = resume.Write([]byte("fake-pdf"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
