package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

var (
	loginPassword    string
	registerEmail    string
	registerPassword string
	registerName     string
	registerPro      bool
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := sessions.Login(cmd.Context(), domain.Credentials{
			Username: args[0],
			Password: loginPassword,
		})
		if err != nil {
			return err
		}
		snap := sessions.Snapshot()
		api.SetToken(snap.Token)
		fmt.Printf("Logged in as %s", snap.Username)
		if len(snap.Roles) > 0 {
			fmt.Printf(" (%s)", strings.Join(snap.Roles, ", "))
		}
		fmt.Println()
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := domain.Registration{
			Username: args[0],
			Email:    registerEmail,
			Password: registerPassword,
			Name:     registerName,
		}
		if registerPro {
			reg.Roles = []string{domain.RoleProfessional}
		}
		if err := sessions.Register(cmd.Context(), reg); err != nil {
			return err
		}
		snap := sessions.Snapshot()
		api.SetToken(snap.Token)
		fmt.Printf("Registered and logged in as %s\n", snap.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions.Logout(cmd.Context())
		api.SetToken("")
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := sessions.Snapshot()
		if !snap.Authenticated() {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("Username: %s\n", snap.Username)
		fmt.Printf("Roles:    %s\n", strings.Join(snap.Roles, ", "))
		if profile := sessions.RefreshProfile(cmd.Context()); profile != nil {
			pretty, _ := json.MarshalIndent(profile, "", "  ")
			fmt.Printf("Profile:  %s\n", pretty)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "contact email")
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().BoolVar(&registerPro, "professional", false, "register as a professional account")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
