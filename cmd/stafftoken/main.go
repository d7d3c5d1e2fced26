// Command stafftoken mints a bearer token for back-office staff.
//
//	JWT_SECRET=... go run ./cmd/stafftoken -role manager
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type env struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

func main() {
	role := flag.String("role", staff.RoleManager.String(), "staff role (admin or manager)")
	id := flag.String("id", "", "staff id, random when empty")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var e env
	if err := envconfig.Process("", &e); err != nil {
		logger.Error("missing configuration", "error", err)
		os.Exit(1)
	}

	r, err := staff.NewRole(strings.ToLower(*role))
	if err != nil {
		logger.Error("invalid role", "role", *role, "error", err)
		os.Exit(2)
	}

	staffID := uuid.New()
	if *id != "" {
		if staffID, err = uuid.Parse(*id); err != nil {
			logger.Error("invalid staff id", "id", *id, "error", err)
			os.Exit(2)
		}
	}

	token, err := jwt.NewService(e.Secret, *ttl).GenerateToken(staff.Actor{ID: staffID, Role: r})
	if err != nil {
		logger.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	logger.Info("token issued", "staff_id", staffID, "role", r, "expires_in", ttl.String())
	fmt.Println(token)
}
