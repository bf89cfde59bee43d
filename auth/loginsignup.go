package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sartor/db"
	"sartor/middleware"
	"sartor/models"
	"sartor/rdx"
	"sartor/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"sartor/globals"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
)

// Authorizer used by the login flow. Wired in main from the
// ADMIN_EMAILS allow-list.
var Gate middleware.Authorizer

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	// The back office has no non-admin area. A principal with a valid
	// password but an email off the allow-list is turned away here and
	// never receives a token, so no signed-in-but-unauthorized state
	// can exist.
	if Gate == nil || !Gate.IsAdmin(storedUser.Email) {
		if _, err := rdx.RdxHdel("tokki", storedUser.UserID); err != nil {
			log.Printf("login: token revoke failed for %s: %v", storedUser.UserID, err)
		}
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	claims := &middleware.Claims{
		Username: storedUser.Username,
		UserID:   storedUser.UserID,
		Email:    storedUser.Email,
		Role:     storedUser.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}
	hashedRefresh := hashToken(refreshToken)

	_, err = db.UserCollection.UpdateOne(
		ctx,
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refresh_token":  hashedRefresh,
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
			"last_login":     time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to store refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("login: redis token cache failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
	}, "Login successful", nil)
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
	if err == nil {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: failed to hash password for %s: %v", input.Email, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		UserID:    "u" + utils.GenerateID(10),
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Role:      []string{"user"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusCreated, map[string]string{"userid": user.UserID}, "Registration successful", nil)
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("logout: error removing token from redis: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}

func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if time.Until(claims.ExpiresAt.Time) >= 30*time.Minute {
		http.Error(w, "Token refresh not allowed yet", http.StatusForbidden)
		return
	}

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(accessTokenTTL))
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	newTokenString, err := newToken.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", claims.UserID, newTokenString); err != nil {
		log.Printf("refresh: error updating token in redis: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": newTokenString}, "Token refreshed successfully", nil)
}

func generateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
