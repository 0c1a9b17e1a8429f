// Command seed adds staff profiles and committee members to a mosquefund database.
//
//	seed -name "Imam Karim" -role admin -pin 1234
//	seed -name Bashir -role cashier -pin 5678 -hash
//	seed -member "Abdul Hamid" -position President -phone +8801700000000
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/config"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/storage/sqlite"
	"github.com/mmynk/mosquefund/pkg/logging"
)

type options struct {
	dbPath string

	name string
	role string
	pin  string
	hash bool

	member   string
	position string
	phone    string
	photoURL string
}

func main() {
	cfg := loadConfig()

	var opts options
	flag.StringVar(&opts.dbPath, "db", cfg.DBPath, "path to the SQLite database")
	flag.StringVar(&opts.name, "name", "", "staff profile name")
	flag.StringVar(&opts.role, "role", "", "staff role: admin or cashier")
	flag.StringVar(&opts.pin, "pin", "", "staff PIN, 4 to 8 digits")
	flag.BoolVar(&opts.hash, "hash", false, "store the PIN as a bcrypt hash")
	flag.StringVar(&opts.member, "member", "", "committee member name")
	flag.StringVar(&opts.position, "position", "", "committee member position")
	flag.StringVar(&opts.phone, "phone", "", "committee member phone")
	flag.StringVar(&opts.photoURL, "photo", "", "committee member photo URL")
	flag.Parse()

	if err := run(context.Background(), opts); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads .env and the environment, then applies LOG_LEVEL from it.
func loadConfig() *config.Config {
	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	return cfg
}

func run(ctx context.Context, opts options) error {
	if opts.name == "" && opts.member == "" {
		return fmt.Errorf("nothing to do: pass -name or -member")
	}

	store, err := sqlite.New(opts.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if opts.name != "" {
		profile, err := buildProfile(opts)
		if err != nil {
			return err
		}
		if err := store.CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		slog.Info("Profile created", "id", profile.ID, "name", profile.Name, "role", profile.Role)
	}

	if opts.member != "" {
		if opts.position == "" {
			return fmt.Errorf("-position is required with -member")
		}
		member := &models.CommitteeMember{
			Name:     opts.member,
			Position: opts.position,
			Phone:    opts.phone,
			PhotoURL: opts.photoURL,
		}
		if err := store.CreateCommitteeMember(ctx, member); err != nil {
			return fmt.Errorf("create committee member: %w", err)
		}
		slog.Info("Committee member created", "id", member.ID, "name", member.Name)
	}

	return nil
}

func buildProfile(opts options) (*models.Profile, error) {
	role, err := models.ParseRole(opts.role)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePIN(opts.pin); err != nil {
		return nil, err
	}

	pin := opts.pin
	if opts.hash {
		if pin, err = auth.HashPIN(opts.pin); err != nil {
			return nil, fmt.Errorf("hash PIN: %w", err)
		}
	}

	return &models.Profile{Name: opts.name, Role: role, PIN: pin}, nil
}
