package app

import (
	"fmt"
	"testing"

	"nihongo_backend/internal/config"
	"nihongo_backend/internal/controller"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	a := &App{}
	c := &controllers{
		auth:     &controller.AuthController{},
		user:     &controller.UserController{},
		content:  &controller.ContentController{},
		grammar:  &controller.GrammarController{},
		miniTest: &controller.MiniTestController{},
		upload:   &controller.UploadController{},
		health:   &controller.HealthController{},
	}
	a.registerRoutes(router, c, &repositories{}, &config.Config{})

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[fmt.Sprintf("%s %s", r.Method, r.Path)] = true
	}
	return routes
}

func TestRegisterRoutesLearnerSubmissionDelete(t *testing.T) {
	routes := registeredRoutes(t)

	// Learners delete their own submission under /api; the admin surface keeps its
	// own delete route. Ownership is enforced in the service, not the router.
	assert.True(t, routes["DELETE /api/grammar/submissions/:submissionId"])
	assert.True(t, routes["DELETE /api/admin/grammar/submissions/:submissionId"])
}

func TestRegisterRoutesKanaAdminSurface(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["POST /api/admin/kana"])
	assert.True(t, routes["PUT /api/admin/kana/:id"])
	assert.True(t, routes["DELETE /api/admin/kana/:id"])
}

func TestRegisterRoutesGuestBrowseSurface(t *testing.T) {
	routes := registeredRoutes(t)

	for _, want := range []string{
		"GET /api/kanji",
		"GET /api/kana",
		"GET /api/vocabulary",
		"GET /api/grammar/lessons",
		"GET /api/minitests",
	} {
		assert.True(t, routes[want], want)
	}
}
