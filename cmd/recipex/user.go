package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/types"
)

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create, show and delete users",
	}
	cmd.AddCommand(newUserCreateCmd(c), newUserGetCmd(c), newUserDeleteCmd(c))
	return cmd
}

func newUserCreateCmd(c *cli) *cobra.Command {
	var username types.Username

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Users.CreateUser(cmd.Context(), username)
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&username.Name, "name", "", "User name")
	cmd.Flags().StringVar(&username.Surname, "surname", "", "User surname")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")
	return cmd
}

func newUserGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user and the recipes it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ids.Parse(args[0])
			if err != nil {
				return err
			}
			user, err := c.app.Users.GetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %s not found", args[0])
			}
			return printJSON(cmd, user)
		},
	}
}

func newUserDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user and every recipe it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ids.Parse(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Users.DeleteUser(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", ids.ToPersisted(userID))
			return nil
		},
	}
}
