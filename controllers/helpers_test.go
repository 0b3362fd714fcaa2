package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/routes"
	"github.com/pest-report/api-go/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testApp struct {
	Router *gin.Engine
	DB     *gorm.DB
	Cfg    *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; keep the pool at
	// one so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{
		JWTSecret:      testSecret,
		UploadDir:      t.TempDir(),
		StorageBackend: "local",
		Environment:    "test",
	}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)

	return &testApp{Router: r, DB: db, Cfg: cfg}
}

func (app *testApp) createUser(t *testing.T, username, email, phone, password string, points int) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:    username,
		Email:       email,
		Phone:       phone,
		Password:    string(hashed),
		TotalPoints: points,
		Rank:        models.RankForPoints(points),
	}
	require.NoError(t, app.DB.Create(&user).Error)
	return user
}

func (app *testApp) createAdmin(t *testing.T, email, password string) models.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{Email: email, Password: string(hashed)}
	require.NoError(t, app.DB.Create(&admin).Error)
	return admin
}

func (app *testApp) userToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateUserToken(userID, testSecret)
	require.NoError(t, err)
	return token
}

func (app *testApp) adminToken(t *testing.T, admin models.Admin) string {
	t.Helper()
	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, testSecret)
	require.NoError(t, err)
	return token
}

func (app *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// reportForm builds a multipart report submission with n photo parts of the
// given content type and size.
type reportForm struct {
	Location    string
	Description string
	PestTypes   []string
	// raw JSON alternative for the pestTypes field; used when non-empty
	PestTypesJSON string
	PhotoCount    int
	PhotoType     string
	PhotoSize     int
}

func (app *testApp) submitReport(t *testing.T, token string, form reportForm) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if form.Location != "" {
		require.NoError(t, mw.WriteField("location", form.Location))
	}
	if form.Description != "" {
		require.NoError(t, mw.WriteField("description", form.Description))
	}
	if form.PestTypesJSON != "" {
		require.NoError(t, mw.WriteField("pestTypes", form.PestTypesJSON))
	} else {
		for _, pt := range form.PestTypes {
			require.NoError(t, mw.WriteField("pestTypes", pt))
		}
	}

	photoType := form.PhotoType
	if photoType == "" {
		photoType = "image/jpeg"
	}
	photoSize := form.PhotoSize
	if photoSize == 0 {
		photoSize = 128
	}
	for i := 0; i < form.PhotoCount; i++ {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos"; filename="photo%d.jpg"`, i))
		header.Set("Content-Type", photoType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xff}, photoSize))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func (app *testApp) countLogs(t *testing.T, userID uint, action string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, app.DB.Model(&models.UserLog{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&count).Error)
	return count
}
