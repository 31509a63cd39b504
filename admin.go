// admin.go - chat analytics admin area
package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 3600 * 24

	devAdminPassword = "admin123"
)

type adminAuth struct {
	token    string
	username string
	password string
}

// newAdminAuth returns nil when no admin password is configured outside gin
// debug mode; the admin area is then not served.
func newAdminAuth(cfg Config, logger *zap.Logger) (*adminAuth, error) {
	password := cfg.AdminPassword
	if password == "" {
		if gin.Mode() != gin.DebugMode {
			logger.Warn("ADMIN_PASSWORD not set, admin area disabled")
			return nil, nil
		}
		logger.Warn("using default admin password, set ADMIN_PASSWORD")
		password = devAdminPassword
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	logger.Info("admin access available", zap.String("path", "/admin/login"))
	return &adminAuth{token: token, username: cfg.AdminUsername, password: password}, nil
}

// generateToken returns 32 random bytes, hex encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (a *adminAuth) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.admin.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "login required", Type: "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.POST("/admin/login", func(c *gin.Context) {
		visitor := s.events.HashIP(c.ClientIP())
		if !s.admin.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("failed admin login", zap.String("visitor", visitor))
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials", Type: "unauthorized"})
			return
		}

		c.SetCookie(adminCookie, s.admin.token, adminCookieMaxAge, "/admin", "", s.cfg.Production(), true)
		s.logger.Info("admin login", zap.String("visitor", visitor))
		c.JSON(http.StatusOK, gin.H{"message": "logged in"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.Production(), true)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.events.Stats(c.Request.Context())
		if err != nil {
			s.serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.events.Stats(c.Request.Context())
		if err != nil {
			s.serverError(c, err)
			return
		}
		filename := fmt.Sprintf("chat-stats-%s.json", time.Now().UTC().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		s.logger.Info("admin stats exported", zap.String("visitor", s.events.HashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.events.Cleanup(c.Request.Context(), s.cfg.AnalyticsRetention)
		if err != nil {
			s.serverError(c, err)
			return
		}
		s.logger.Info("privacy cleanup", zap.Int64("deleted", n))
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
