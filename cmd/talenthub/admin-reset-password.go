package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/db"
	gormstore "github.com/keltoummalouki/talenthub/pkg/server/store/gorm"
)

// adminResetPasswordCmd represents the admin reset-password command
var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset the administrator's password",
	Long: `Reset the password for an administrator account.

The new password is read from TALENTHUB_ADMIN_PASSWORD; when unset, a
random password is generated and printed to stdout.

Example:
  talenthub admin reset-password keltoum`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]

		password, err := resetAdminPassword(username)
		if err != nil {
			audit.Log(audit.PasswordChangeEvent{
				Username:     username,
				Success:      false,
				ErrorMessage: err.Error(),
			})
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", username, err)
			os.Exit(1)
		}

		audit.Log(audit.PasswordChangeEvent{Username: username, Success: true})
		if password != "" {
			fmt.Println(password)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminResetPasswordCmd)
}

func resetAdminPassword(username string) (string, error) {
	password := os.Getenv("TALENTHUB_ADMIN_PASSWORD")
	generated := ""
	if password == "" {
		raw := make([]byte, 18)
		if _, err := rand.Read(raw); err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		password = base64.RawURLEncoding.EncodeToString(raw)
		generated = password
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	users := gormstore.NewUsersStore(database)
	if err := users.UpdateUserPassword(username, string(hash)); err != nil {
		return "", err
	}

	return generated, nil
}
