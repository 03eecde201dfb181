package main

import (
	"Melt-App/domain"
	"Melt-App/internal/client/api"
	"Melt-App/internal/client/controller"
	"Melt-App/internal/client/spotify"
	"Melt-App/internal/client/store"
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const pollInterval = 5 * time.Second

func printMood(res domain.MoodResponse) {
	fmt.Printf("Mood: %s\n", res.Mood)
	fmt.Printf("Palette: %s %s %s %s\n",
		res.ColorPalette.Primary, res.ColorPalette.Secondary,
		res.ColorPalette.Text, res.ColorPalette.Accent)
	for i, r := range res.Recipes {
		fmt.Printf("  [%d] %s: %s\n", i+1, r.Title, r.Description)
		fmt.Printf("      ingredients: %s\n", strings.Join(r.Ingredients, ", "))
	}
	fmt.Printf("Playlist: %s\n", res.SpotifyPlaylist)
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  register <username> <email> <password>")
	fmt.Println("  login <username> <password> | logout | me | status")
	fmt.Println("  mood <journal text...>     analyze a journal entry")
	fmt.Println("  save                       save the held analysis to the journal")
	fmt.Println("  screen <main|collections|journal|community|admin>")
	fmt.Println("  collections | newcol <name> | keep <collection name> <recipe #> | delcol <id>")
	fmt.Println("  history | delentry <id>")
	fmt.Println("  community | share <title> | <description> | <ingredient,ingredient,...>")
	fmt.Println("  spotify login | spotify token <token> | spotify logout | now")
	fmt.Println("  help | exit")
}

// repl runs the interactive shell. The playback poll keeps running in the
// background between commands.
func repl(backend *api.Client, ctrl *controller.Controller, ls *store.LocalStore, spotifyClientID, spotifyRedirect string) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()
	lastJournalText := ""

	if session := ls.Session(); session != nil {
		backend.SetToken(session.Token)
		fmt.Printf("Welcome back, %s\n", session.User.Username)
	}
	if ls.SpotifyToken() != "" {
		ctrl.StartPolling(pollInterval)
	}

	for {
		fmt.Print("melt> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			printHelp()

		case "register":
			if len(args) < 4 {
				fmt.Println("Usage: register <username> <email> <password>")
				continue
			}
			res, err := backend.Register(ctx, args[1], args[2], args[3])
			if err != nil {
				fmt.Println("Registration failed:", err)
				continue
			}
			backend.SetToken(res.Token)
			_ = ls.SetSession(&store.Session{Token: res.Token, User: res.User})
			fmt.Printf("Registered as %s, check your inbox to verify your email\n", res.User.Username)

		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <username> <password>")
				continue
			}
			res, err := backend.Login(ctx, args[1], args[2])
			if err != nil {
				fmt.Println("Login failed:", err)
				continue
			}
			backend.SetToken(res.Token)
			_ = ls.SetSession(&store.Session{Token: res.Token, User: res.User})
			fmt.Printf("Logged in as %s\n", res.User.Username)

		case "logout":
			backend.SetToken("")
			_ = ls.ClearSession()
			_ = ctrl.SetScreen(ctx, controller.ScreenMain)
			fmt.Println("Logged out")

		case "me":
			profile, err := backend.Me(ctx)
			if err != nil {
				fmt.Println("Failed to get profile:", err)
				continue
			}
			fmt.Printf("%s <%s> role=%s verified=%v\n", profile.Username, profile.Email, profile.Role, profile.IsVerified)

		case "status":
			status, err := backend.AIStatus(ctx)
			if err != nil {
				fmt.Println("Failed to get AI status:", err)
				continue
			}
			fmt.Printf("ok=%v provider=%s model=%s hasKey=%v\n", status.Ok, status.Provider, status.Model, status.HasKey)

		case "mood":
			text := strings.TrimSpace(strings.TrimPrefix(line, "mood"))
			res, err := ctrl.SubmitJournal(ctx, text)
			if err != nil {
				fmt.Println("Analysis failed:", err)
				continue
			}
			lastJournalText = text
			printMood(res)

		case "save":
			mood := ctrl.Mood()
			if mood == nil {
				fmt.Println("Nothing to save, run 'mood <text>' first")
				continue
			}
			if ctrl.EntrySaved() {
				fmt.Println("Entry already saved")
				continue
			}
			entry, err := backend.SaveJournal(ctx, domain.SaveJournalRequest{
				JournalText:     lastJournalText,
				Mood:            mood.Mood,
				ColorPalette:    mood.ColorPalette,
				Recipes:         mood.Recipes,
				SpotifyPlaylist: mood.SpotifyPlaylist,
			})
			if err != nil {
				fmt.Println("Failed to save entry:", err)
				continue
			}
			ctrl.MarkEntrySaved()
			fmt.Printf("Saved journal entry %s\n", entry.ID)

		case "screen":
			if len(args) < 2 {
				fmt.Println("Usage: screen <main|collections|journal|community|admin>")
				continue
			}
			if err := ctrl.SetScreen(ctx, controller.Screen(args[1])); err != nil {
				fmt.Println("Failed to switch screen:", err)
				continue
			}
			if controller.Screen(args[1]) == controller.ScreenAdmin {
				users, collections, history := ctrl.AdminData()
				fmt.Printf("%d users, %d collections, %d journal entries\n", len(users), len(collections), len(history))
			}

		case "collections":
			collections, err := backend.GetCollections(ctx)
			if err != nil {
				fmt.Println("Failed to get collections:", err)
				continue
			}
			if session := ls.Session(); session != nil {
				_ = ls.ReplaceCollections(session.User.ID, collections)
			}
			for _, col := range collections {
				fmt.Printf("%s  %s (%d recipes)\n", col.ID, col.Name, len(col.Recipes))
				for _, r := range col.Recipes {
					fmt.Printf("    - %s\n", r.Title)
				}
			}

		case "newcol":
			if len(args) < 2 {
				fmt.Println("Usage: newcol <name>")
				continue
			}
			col, err := backend.CreateCollection(ctx, strings.Join(args[1:], " "))
			if err != nil {
				fmt.Println("Failed to create collection:", err)
				continue
			}
			fmt.Printf("Created collection %s (%s)\n", col.Name, col.ID)

		case "keep":
			if len(args) < 3 {
				fmt.Println("Usage: keep <collection name> <recipe #>")
				continue
			}
			mood := ctrl.Mood()
			if mood == nil {
				fmt.Println("No analysis held, run 'mood <text>' first")
				continue
			}
			index, err := strconv.Atoi(args[len(args)-1])
			if err != nil || index < 1 || index > len(mood.Recipes) {
				fmt.Println("Recipe # must be between 1 and", len(mood.Recipes))
				continue
			}
			recipe := mood.Recipes[index-1]
			name := strings.Join(args[1:len(args)-1], " ")
			col, err := backend.SaveRecipe(ctx, domain.SaveRecipeRequest{
				CollectionName: name,
				RecipeID:       recipe.ID,
				Title:          recipe.Title,
				Description:    recipe.Description,
				Ingredients:    recipe.Ingredients,
				FlavorProfile:  recipe.FlavorProfile,
			})
			if err != nil {
				fmt.Println("Failed to save recipe:", err)
				continue
			}
			fmt.Printf("Saved %q to collection %s\n", recipe.Title, col.Name)

		case "delcol":
			if len(args) < 2 {
				fmt.Println("Usage: delcol <id>")
				continue
			}
			if err := backend.DeleteCollection(ctx, args[1]); err != nil {
				fmt.Println("Failed to delete collection:", err)
				continue
			}
			fmt.Println("Collection deleted")

		case "history":
			entries, err := backend.GetJournal(ctx)
			if err != nil {
				fmt.Println("Failed to get journal:", err)
				continue
			}
			if session := ls.Session(); session != nil {
				_ = ls.ReplaceHistory(session.User.ID, entries)
			}
			for _, e := range entries {
				fmt.Printf("%s  %s  %s\n", e.ID, e.Date.Format("2006-01-02"), e.Mood)
			}

		case "delentry":
			if len(args) < 2 {
				fmt.Println("Usage: delentry <id>")
				continue
			}
			if err := backend.DeleteJournal(ctx, args[1]); err != nil {
				fmt.Println("Failed to delete entry:", err)
				continue
			}
			fmt.Println("Entry deleted")

		case "community":
			recipes, err := backend.GetPublicRecipes(ctx)
			if err != nil {
				fmt.Println("Failed to get community recipes:", err)
				continue
			}
			_ = ls.SetPublicRecipes(recipes)
			for _, r := range recipes {
				fmt.Printf("%s by %s: %s\n", r.Title, r.AuthorUsername, r.Description)
			}

		case "share":
			rest := strings.TrimSpace(strings.TrimPrefix(line, "share"))
			parts := strings.SplitN(rest, "|", 3)
			if len(parts) != 3 {
				fmt.Println("Usage: share <title> | <description> | <ingredient,ingredient,...>")
				continue
			}
			ingredients := strings.Split(parts[2], ",")
			for i := range ingredients {
				ingredients[i] = strings.TrimSpace(ingredients[i])
			}
			recipe, err := backend.ShareRecipe(ctx, domain.ShareRecipeRequest{
				Title:       strings.TrimSpace(parts[0]),
				Description: strings.TrimSpace(parts[1]),
				Ingredients: ingredients,
			})
			if err != nil {
				fmt.Println("Failed to share recipe:", err)
				continue
			}
			fmt.Printf("Shared %q (%s)\n", recipe.Title, recipe.ID)

		case "spotify":
			if len(args) < 2 {
				fmt.Println("Usage: spotify login | spotify token <token> | spotify logout")
				continue
			}
			switch args[1] {
			case "login":
				fmt.Println("Open this URL, authorize, then paste the access_token from the redirect:")
				fmt.Println(spotify.LoginURL(spotifyClientID, spotifyRedirect))
			case "token":
				if len(args) < 3 {
					fmt.Println("Usage: spotify token <token>")
					continue
				}
				_ = ls.SetSpotifyToken(args[2])
				ctrl.StartPolling(pollInterval)
				fmt.Println("Spotify connected, watching playback")
			case "logout":
				ctrl.SpotifyLogout()
				fmt.Println("Spotify disconnected")
			default:
				fmt.Println("Usage: spotify login | spotify token <token> | spotify logout")
			}

		case "now":
			playing := ctrl.NowPlaying()
			if playing == nil || playing.Item == nil {
				fmt.Println("Nothing playing")
				continue
			}
			artist := ""
			if len(playing.Item.Artists) > 0 {
				artist = playing.Item.Artists[0].Name
			}
			fmt.Printf("Now playing: %s by %s\n", playing.Item.Name, artist)
			if drink := ctrl.Drink(); drink != nil {
				fmt.Printf("Pairs with: %s, %s\n", drink.DrinkName, drink.DrinkDescription)
			}

		case "exit":
			ctrl.StopPolling()
			fmt.Println("Bye")
			return

		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func main() {
	var (
		baseURL         string
		storePath       string
		spotifyClientID string
		spotifyRedirect string
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&storePath, "store", "melt.json", "path to the local store file")
	flag.StringVar(&spotifyClientID, "spotify-client-id", os.Getenv("SPOTIFY_CLIENT_ID"), "spotify application client id")
	flag.StringVar(&spotifyRedirect, "spotify-redirect", "http://localhost:8080/callback", "spotify redirect URI")
	flag.Parse()

	ls := store.NewLocalStore(storePath)
	if err := ls.Load(); err != nil {
		log.Fatalf("failed to load local store: %v", err)
	}

	backend := api.NewClient(baseURL)
	ctrl := controller.NewController(ls, backend, spotify.NewClient())

	repl(backend, ctrl, ls, spotifyClientID, spotifyRedirect)
}
