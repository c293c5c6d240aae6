package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/types"
)

func newRecipeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Create, find and delete recipes",
	}
	cmd.AddCommand(
		newRecipeCreateCmd(c),
		newRecipeUpdateCmd(c),
		newRecipeGetCmd(c),
		newRecipeSearchCmd(c),
		newRecipeTagsCmd(c),
		newRecipeDeleteCmd(c),
	)
	return cmd
}

func newRecipeCreateCmd(c *cli) *cobra.Command {
	var (
		owner  string
		recipe types.Recipe
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe owned by a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := ids.Parse(owner)
			if err != nil {
				return err
			}
			saved, err := c.app.Recipes.CreateRecipes(cmd.Context(), userID, []types.Recipe{recipe})
			if err != nil {
				return err
			}
			return printJSON(cmd, saved[0])
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "Id of the owning user")
	bindRecipeFlags(cmd, &recipe)
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRecipeUpdateCmd(c *cli) *cobra.Command {
	var changes types.Recipe

	cmd := &cobra.Command{
		Use:   "update <recipe-id>",
		Short: "Change fields of a recipe",
		Long: `Change fields of a recipe. Only the flags given are changed; the
other fields keep their stored values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := c.app.Recipes.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if recipe == nil {
				return fmt.Errorf("recipe %s not found", args[0])
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				recipe.Title = changes.Title
			}
			if flags.Changed("description") {
				recipe.Description = changes.Description
			}
			if flags.Changed("ingredient") {
				recipe.Ingredients = changes.Ingredients
			}
			if flags.Changed("step") {
				recipe.Instructions = changes.Instructions
			}
			if flags.Changed("tag") {
				recipe.Tags = changes.Tags
			}
			if flags.Changed("image-url") {
				recipe.ImageURL = changes.ImageURL
			}
			if flags.Changed("image-upload-url") {
				recipe.ImageUploadURL = changes.ImageUploadURL
			}

			updated, err := c.app.Recipes.UpdateRecipe(cmd.Context(), *recipe)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			return printJSON(cmd, updated)
		},
	}

	bindRecipeFlags(cmd, &changes)
	return cmd
}

// bindRecipeFlags binds the editable recipe fields to flags of cmd
func bindRecipeFlags(cmd *cobra.Command, recipe *types.Recipe) {
	cmd.Flags().StringVar(&recipe.Title, "title", "", "Recipe title")
	cmd.Flags().StringVar(&recipe.Description, "description", "", "Recipe description")
	cmd.Flags().StringSliceVar(&recipe.Ingredients, "ingredient", nil, "Ingredient (repeatable)")
	cmd.Flags().StringArrayVar(&recipe.Instructions, "step", nil, "Instruction step (repeatable)")
	cmd.Flags().StringSliceVar(&recipe.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&recipe.ImageURL, "image-url", "", "Image URL")
	cmd.Flags().StringVar(&recipe.ImageUploadURL, "image-upload-url", "", "Image upload URL")
}

func newRecipeGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <recipe-id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := c.app.Recipes.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if recipe == nil {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			return printJSON(cmd, recipe)
		},
	}
}

func newRecipeSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <title>",
		Short: "List recipes with exactly this title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := c.app.Recipes.GetRecipeByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, recipes)
		},
	}
}

func newRecipeTagsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <tag>...",
		Short: "List recipes carrying any of the tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := c.app.Recipes.GetRecipeByTags(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd, recipes)
		},
	}
}

func newRecipeDeleteCmd(c *cli) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "delete <recipe-id>",
		Short: "Delete a recipe owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Recipes.DeleteRecipe(cmd.Context(), types.Ids{RecipeID: args[0], UserID: owner})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "Id of the owning user")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
