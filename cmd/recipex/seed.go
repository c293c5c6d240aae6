package main

import (
	"github.com/spf13/cobra"

	"github.com/recipex/backend/internal/types"
)

var sampleRecipes = []types.Recipe{
	{
		Title:        "Spaghetti Aglio e Olio",
		Description:  "Garlic and olive oil pasta with chili flakes.",
		Ingredients:  []string{"200g spaghetti", "4 cloves garlic", "60ml olive oil", "1 tsp chili flakes", "parsley"},
		Instructions: []string{"Boil the pasta", "Fry sliced garlic in oil", "Toss pasta with the oil and chili", "Finish with parsley"},
		Tags:         []string{"italian", "pasta", "vegetarian", "quick"},
	},
	{
		Title:        "Chickpea Curry",
		Description:  "A mild coconut curry with chickpeas and spinach.",
		Ingredients:  []string{"400g chickpeas", "400ml coconut milk", "1 onion", "2 tbsp curry paste", "100g spinach"},
		Instructions: []string{"Soften the onion", "Stir in curry paste", "Add chickpeas and coconut milk", "Simmer and fold in spinach"},
		Tags:         []string{"indian", "vegan", "curry"},
	},
	{
		Title:        "Greek Salad",
		Description:  "Tomatoes, cucumber, olives and feta.",
		Ingredients:  []string{"3 tomatoes", "1 cucumber", "1 red onion", "100g feta", "kalamata olives", "oregano"},
		Instructions: []string{"Chop the vegetables", "Top with feta and olives", "Dress with oil and oregano"},
		Tags:         []string{"greek", "salad", "vegetarian", "quick"},
	},
	{
		Title:        "Banana Pancakes",
		Description:  "Fluffy pancakes with mashed banana.",
		Ingredients:  []string{"2 bananas", "2 eggs", "120g flour", "200ml milk", "1 tsp baking powder"},
		Instructions: []string{"Mash the bananas", "Whisk in eggs and milk", "Fold in flour and baking powder", "Cook in a hot pan"},
		Tags:         []string{"breakfast", "sweet"},
	},
}

func newSeedCmd(c *cli) *cobra.Command {
	var name, surname string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a user owning a set of sample recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			user, err := c.app.Users.CreateUser(ctx, types.Username{Name: name, Surname: surname})
			if err != nil {
				return err
			}
			if _, err := c.app.Recipes.CreateRecipes(ctx, user.ID, sampleRecipes); err != nil {
				return err
			}

			seeded, err := c.app.Users.GetUser(ctx, user.ID)
			if err != nil {
				return err
			}
			c.log.Info().Int("recipes", len(sampleRecipes)).Msg("seeded sample recipes")
			return printJSON(cmd, seeded)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Seed", "Name of the seeded user")
	cmd.Flags().StringVar(&surname, "surname", "User", "Surname of the seeded user")
	return cmd
}
