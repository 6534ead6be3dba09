package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   string `json:"user"`
}

// registerUser создаёт пользователя через API и возвращает его представление.
func registerUser(t *testing.T, router http.Handler, username string) userView {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/users",
		`{"username":"`+username+`","name":"`+username+`","password":"12345"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var u userView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	return u
}

func createBlog(t *testing.T, router http.Handler, owner userView, body string) blogView {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/blogs", body, owner.Username, owner.ID)
	require.Equal(t, http.StatusCreated, rr.Code)
	var b blogView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	return b
}

func TestBlogs_Create(t *testing.T) {
	router := newTestRouter(t)
	owner := registerUser(t, router, "writer")

	t.Run("created with owner reference", func(t *testing.T) {
		blog := createBlog(t, router, owner,
			`{"title":"Go To Statement Considered Harmful","author":"Edsger W. Dijkstra","url":"https://example.com/goto","likes":5}`)
		assert.NotEmpty(t, blog.ID)
		assert.Equal(t, 5, blog.Likes)
		assert.Equal(t, owner.ID, blog.User)

		// id блога появился в списке блогов владельца
		rr := doJSON(t, router, http.MethodGet, "/api/users/"+owner.ID, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var u userView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
		assert.Contains(t, u.Blogs, blog.ID)
	})

	t.Run("likes default to zero", func(t *testing.T) {
		blog := createBlog(t, router, owner, `{"title":"First class tests","author":"Robert C. Martin","url":"https://example.com/tests"}`)
		assert.Equal(t, 0, blog.Likes)
	})

	t.Run("missing title or url rejected", func(t *testing.T) {
		before := listBlogs(t, router)

		rr := doJSON(t, router, http.MethodPost, "/api/blogs", `{"author":"x","url":"https://example.com"}`, owner.Username, owner.ID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = doJSON(t, router, http.MethodPost, "/api/blogs", `{"title":"no url","author":"x"}`, owner.Username, owner.ID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		assert.Len(t, listBlogs(t, router), len(before))
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/blogs", `{"title":"t","url":"u"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func listBlogs(t *testing.T, router http.Handler) []blogView {
	t.Helper()
	rr := doJSON(t, router, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var blogs []blogView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &blogs))
	return blogs
}

func TestBlogs_List(t *testing.T) {
	router := newTestRouter(t)
	owner := registerUser(t, router, "lister")

	createBlog(t, router, owner, `{"title":"React patterns","author":"Michael Chan","url":"https://reactpatterns.com/","likes":7}`)
	createBlog(t, router, owner, `{"title":"Canonical string reduction","author":"Edsger W. Dijkstra","url":"https://example.com/csr"}`)

	blogs := listBlogs(t, router)
	require.Len(t, blogs, 2)

	urls := []string{blogs[0].URL, blogs[1].URL}
	assert.Contains(t, urls, "https://reactpatterns.com/")
	for _, b := range blogs {
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, owner.ID, b.User)
	}
}

func TestBlogs_Update(t *testing.T) {
	router := newTestRouter(t)
	owner := registerUser(t, router, "updater")
	blog := createBlog(t, router, owner, `{"title":"t","url":"https://example.com","likes":10}`)

	t.Run("likes can be set to any integer", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, "/api/blogs/"+blog.ID, `{"likes":-1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var updated blogView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, -1, updated.Likes)
		assert.Equal(t, "t", updated.Title)

		// значение видно при следующем чтении
		blogs := listBlogs(t, router)
		require.Len(t, blogs, 1)
		assert.Equal(t, -1, blogs[0].Likes)
	})

	t.Run("missing blog", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, "/api/blogs/no-such-id", `{"likes":1}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestBlogs_Delete(t *testing.T) {
	router := newTestRouter(t)
	owner := registerUser(t, router, "owner")
	intruder := registerUser(t, router, "intruder")

	first := createBlog(t, router, owner, `{"title":"first","url":"https://example.com/1"}`)
	second := createBlog(t, router, owner, `{"title":"second","url":"https://example.com/2"}`)

	t.Run("foreign user is rejected", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/blogs/"+first.ID, "", intruder.Username, intruder.ID)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Len(t, listBlogs(t, router), 2)
	})

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/blogs/"+first.ID, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Len(t, listBlogs(t, router), 2)
	})

	t.Run("owner deletes exactly one blog", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/blogs/"+first.ID, "", owner.Username, owner.ID)
		require.Equal(t, http.StatusNoContent, rr.Code)

		blogs := listBlogs(t, router)
		require.Len(t, blogs, 1)
		assert.Equal(t, second.ID, blogs[0].ID)
	})

	t.Run("missing blog", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/blogs/"+first.ID, "", owner.Username, owner.ID)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
