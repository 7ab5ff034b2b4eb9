package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/sivamani2003/accesshub/pkg/db"
	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
	gormstore "github.com/sivamani2003/accesshub/pkg/server/store/gorm"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `Manage users directly against the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'user' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// userCreateCmd bootstraps users with elevated roles. The HTTP registration
// endpoint always creates Employees, so the first Manager and Admin accounts
// are created here.
var userCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Create a user",
	Long: `Create a user directly in the database.

Example:
  accessctl user create admin --role Admin --password changeme`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		if !model.ValidRole(role) {
			fmt.Fprintf(os.Stderr, "Invalid role %q, must be Employee, Manager, or Admin\n", role)
			os.Exit(1)
		}
		if password == "" {
			fmt.Fprintln(os.Stderr, "--password is required")
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to hash password:", err)
			os.Exit(1)
		}

		usersStore := gormstore.NewUsersStore(database)
		user, err := usersStore.CreateUser(store.NewUser{
			Username:     username,
			PasswordHash: string(hash),
			Role:         model.Role(role),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create user:", err)
			os.Exit(1)
		}

		fmt.Printf("Created user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().String("role", string(model.RoleEmployee), "user role (Employee, Manager, or Admin)")
	userCreateCmd.Flags().String("password", "", "user password")
}
