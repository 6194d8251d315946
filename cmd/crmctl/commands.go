package main

import (
	"errors"
	"fmt"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/spf13/cobra"
)

func newRootCommand(connect connectFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "crmctl",
		Short:        "Genius CRM maintenance commands",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newMigrateCommand(connect),
		newSeedCommand(connect),
		newCreateUserCommand(connect),
		newPromoteCommand(connect),
		newBirthdayCommand(connect),
	)
	return cmd
}

// withRuntime opens a runtime for the duration of fn
func withRuntime(cmd *cobra.Command, connect connectFunc, fn func(rt *runtime) error) error {
	rt, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if rt.Close != nil {
			_ = rt.Close()
		}
	}()
	return fn(rt)
}

func newMigrateCommand(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, connect, func(rt *runtime) error {
				if err := rt.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				cmd.Println("Schema is up to date.")
				return nil
			})
		},
	}
}

func newSeedCommand(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, connect, func(rt *runtime) error {
				created, err := rt.Tags.Seed(cmd.Context(), services.DefaultSeedTags)
				if err != nil {
					return fmt.Errorf("seed tags: %w", err)
				}
				cmd.Printf("Seeded %d new tag(s), %d already present.\n", created, len(services.DefaultSeedTags)-created)
				return nil
			})
		},
	}
}

type createUserArgs struct {
	username string
	email    string
	password string
	staff    bool
}

func newCreateUserCommand(connect connectFunc) *cobra.Command {
	var arguments createUserArgs
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create an operator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if arguments.username == "" {
				return errors.New("--username is required")
			}
			return withRuntime(cmd, connect, func(rt *runtime) error {
				user, err := rt.Users.CreateOperator(cmd.Context(), arguments.username, arguments.email, arguments.password, arguments.staff)
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				cmd.Printf("Created user %q (id %d, staff=%t).\n", user.Username, user.ID, user.IsStaff)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&arguments.username, "username", "", "Login name of the new account.")
	cmd.Flags().StringVar(&arguments.email, "email", "", "Email address of the new account.")
	cmd.Flags().StringVar(&arguments.password, "password", "",
		"Password of the new account. Leave empty to create an account that cannot log in until a reset.")
	cmd.Flags().BoolVar(&arguments.staff, "staff", false, "Grant staff permissions.")
	return cmd
}

type promoteArgs struct {
	username string
	revoke   bool
}

func newPromoteCommand(connect connectFunc) *cobra.Command {
	var arguments promoteArgs
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant or revoke staff permissions on an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if arguments.username == "" {
				return errors.New("--username is required")
			}
			return withRuntime(cmd, connect, func(rt *runtime) error {
				user, err := rt.Users.SetStaff(cmd.Context(), arguments.username, !arguments.revoke)
				if err != nil {
					return fmt.Errorf("update user: %w", err)
				}
				cmd.Printf("User %q now has staff=%t.\n", user.Username, user.IsStaff)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&arguments.username, "username", "", "Login name of the account.")
	cmd.Flags().BoolVar(&arguments.revoke, "revoke", false, "Remove staff permissions instead of granting them.")
	return cmd
}

type birthdayArgs struct {
	page string
	to   string
	name string
}

func newBirthdayCommand(connect connectFunc) *cobra.Command {
	var arguments birthdayArgs
	cmd := &cobra.Command{
		Use:   "birthday",
		Short: "Post a birthday greeting on a Facebook page and email the customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if arguments.page == "" || arguments.name == "" {
				return errors.New("--page and --name are required")
			}
			return withRuntime(cmd, connect, func(rt *runtime) error {
				res, err := rt.Birthday.Greet(cmd.Context(), arguments.page, arguments.to, arguments.name)
				if err != nil {
					return err
				}
				cmd.Printf("[Facebook] Created post: %s\n", res.PostID)
				if res.Emailed {
					cmd.Printf("[SendGrid] Email sent to %s\n", arguments.to)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&arguments.page, "page", "", "Facebook page ID to post on.")
	cmd.Flags().StringVar(&arguments.to, "to", "", "Customer email address. No email is sent when empty.")
	cmd.Flags().StringVar(&arguments.name, "name", "", "Customer first name used in the greeting.")
	return cmd
}
