package http

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rallypoint-app/rallypoint-backend/internal/users/repository"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	New(repository.New(db)).Register(r)
	return r, mock, db
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	t.Run("valid form inserts and redirects", func(t *testing.T) {
		r, mock, db := setupRouter(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Ada", "Lovelace", "0111234567", "").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

		w := postForm(r, "/users", url.Values{
			"firstName": {"Ada"},
			"lastName":  {"Lovelace"},
			"phone":     {"0111234567"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/users", w.Header().Get("Location"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing phone re-renders the form without touching the database", func(t *testing.T) {
		r, mock, db := setupRouter(t)
		defer db.Close()

		w := postForm(r, "/users", url.Values{
			"firstName": {"Ada"},
			"lastName":  {"Lovelace"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Phone number is required.")
		assert.Contains(t, w.Body.String(), "Ada")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first missing field wins", func(t *testing.T) {
		r, _, db := setupRouter(t)
		defer db.Close()

		w := postForm(r, "/users", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "First name is required.")
		assert.NotContains(t, w.Body.String(), "Last name is required.")
	})
}

func TestListUserGroups(t *testing.T) {
	joinCols := []string{"first_name", "group_id", "name", "description"}

	t.Run("renders the user's groups with placeholders", func(t *testing.T) {
		r, mock, db := setupRouter(t)
		defer db.Close()

		mock.ExpectQuery(`INNER JOIN members`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(joinCols).
				AddRow("Ada", int64(7), "Hiking Crew", "").
				AddRow("Ada", int64(9), "", "Beach day"))

		req := httptest.NewRequest(http.MethodGet, "/users/1/groups", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hiking Crew")
		assert.Contains(t, w.Body.String(), "No Description")
		assert.Contains(t, w.Body.String(), "Unnamed")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user with no groups still renders when the user exists", func(t *testing.T) {
		r, mock, db := setupRouter(t)
		defer db.Close()

		mock.ExpectQuery(`INNER JOIN members`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(joinCols))
		mock.ExpectQuery(`SELECT first_name FROM users`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"first_name"}).AddRow("Alan"))

		req := httptest.NewRequest(http.MethodGet, "/users/2/groups", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alan")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user renders not found", func(t *testing.T) {
		r, mock, db := setupRouter(t)
		defer db.Close()

		mock.ExpectQuery(`INNER JOIN members`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(joinCols))
		mock.ExpectQuery(`SELECT first_name FROM users`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		req := httptest.NewRequest(http.MethodGet, "/users/99/groups", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
