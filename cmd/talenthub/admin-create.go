package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/keltoummalouki/talenthub/pkg/db"
	"github.com/keltoummalouki/talenthub/pkg/model"
	gormstore "github.com/keltoummalouki/talenthub/pkg/server/store/gorm"
)

// adminCreateCmd represents the admin create command
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the administrator account",
	Long: `Create the administrator account.

The password is read from TALENTHUB_ADMIN_PASSWORD; when unset, a random
password is generated and printed to stdout.

Example:
  talenthub admin create --username keltoum --email keltoum@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")

		if username == "" || email == "" {
			fmt.Fprintln(os.Stderr, "both --username and --email are required")
			os.Exit(1)
		}

		password, err := createAdmin(username, email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create admin %s: %v\n", username, err)
			os.Exit(1)
		}
		if password != "" {
			fmt.Println("Generated password:", password)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)

	adminCreateCmd.Flags().StringP("username", "u", "", "admin username")
	adminCreateCmd.Flags().StringP("email", "e", "", "admin email address")
}

// createAdmin stores the account and returns the generated password, or ""
// when the password came from the environment.
func createAdmin(username, email string) (string, error) {
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
	err = users.CreateUser(&model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		return "", err
	}

	return generated, nil
}
