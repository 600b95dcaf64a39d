package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"showbench/internal/db"
	"showbench/internal/logging"
)

type claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	Tenant string `json:"tenant"`
	jwt.RegisteredClaims
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type exchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	user := db.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Role:         db.RoleUser,
	}
	if err := tenantDB(c).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeError(c, http.StatusConflict, "email already registered")
			return
		}
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid login payload")
		return
	}
	conn := tenantDB(c)
	var user db.User
	err := conn.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	code, err := db.IssueAuthCode(conn, user.ID, time.Duration(s.cfg.AuthCodeTTLSeconds)*time.Second)
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// handleExchange redeems a one-shot auth code for a bearer token. The code
// is a db record with an expiry, so the exchange works across restarts and
// a code can never be replayed.
func (s *Server) handleExchange(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid exchange payload")
		return
	}
	conn := tenantDB(c)
	userID, err := db.RedeemAuthCode(conn, req.Code)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(c, http.StatusUnauthorized, "code invalid or expired")
			return
		}
		writeDBError(c, err)
		return
	}
	var user db.User
	if err := conn.First(&user, userID).Error; err != nil {
		writeDBError(c, err)
		return
	}
	token, err := s.issueToken(user, tenantName(c))
	if err != nil {
		logging.Log.Errorf("token signing failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"role":      user.Role,
		"expiresIn": s.cfg.JWTTTLMinutes * 60,
	})
}

func (s *Server) issueToken(user db.User, tenant string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: user.ID,
		Role:   user.Role,
		Tenant: tenant,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTTTLMinutes) * time.Minute)),
		},
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Server) parseToken(raw string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return cl, nil
}

// authRequired validates the bearer token and pins it to the resolved
// tenant: a token issued for one tenant is worthless against another.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		cl, err := s.parseToken(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if cl.Tenant != tenantName(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tenant mismatch"})
			return
		}
		c.Set(ctxKeyUserID, cl.UserID)
		c.Set(ctxKeyRole, cl.Role)
		c.Next()
	}
}

func (s *Server) requireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxKeyRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxKeyUserID)
}

func currentRole(c *gin.Context) string {
	return c.GetString(ctxKeyRole)
}
