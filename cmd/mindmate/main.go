package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mindmate/internal/bootstrap"
	meditationdto "mindmate/internal/modules/meditation/dto"
	quotedto "mindmate/internal/modules/quote/dto"
	statsdto "mindmate/internal/modules/stats/dto"
	userdto "mindmate/internal/modules/user/dto"
	"mindmate/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir    string
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "mindmate",
		Short:         "Personal wellbeing companion: chat, calls, meditations and quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", defaultDataDir(), "directory holding the store and side files")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default <data-dir>/"+config.FileName+")")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newUserCmd(flags))
	root.AddCommand(newChatCmd(flags))
	root.AddCommand(newCallCmd(flags))
	root.AddCommand(newMeditationCmd(flags))
	root.AddCommand(newQuoteCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newPayCmd(flags))
	root.AddCommand(newStoreCmd(flags))
	return root
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mindmate")
	}
	return ".mindmate"
}

func loadApp(ctx context.Context, flags *rootFlags) (*bootstrap.App, error) {
	if err := os.MkdirAll(flags.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	cfg, err := config.New(flags.dataDir, flags.configFile)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

// withApp opens the app for one command and closes it afterwards.
func withApp(flags *rootFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := context.Background()
	app, err := loadApp(ctx, flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// ─── serve / tui / store ─────────────────────────────────────────────────────

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the upstream relay",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			if addr != "" {
				app.Config.HTTP.Addr = addr
			}
			srv, err := app.Server()
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(userID, app)
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newStoreCmd(flags *rootFlags) *cobra.Command {
	store := &cobra.Command{Use: "store", Short: "Inspect the persisted document"}
	store.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the whole document as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				raw, err := app.StoreCLI.Dump(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return err
			})
		},
	})
	return store
}

// ─── user ────────────────────────────────────────────────────────────────────

func printUser(w io.Writer, u userdto.UserOutput) {
	_, _ = fmt.Fprintf(w, "%s  %s <%s>  created=%s\n", u.ID, u.Name, u.Email, formatTime(u.CreatedAt))
}

func newUserCmd(flags *rootFlags) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "User accounts"}

	var name string
	ensure := &cobra.Command{
		Use:   "ensure <email>",
		Short: "Get a user by email, creating it when missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UserCLI.GetOrCreate(ctx, args[0], name)
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	ensure.Flags().StringVar(&name, "name", "", "display name")

	var regName string
	register := &cobra.Command{
		Use:   "register <email>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UserCLI.Register(ctx, args[0], regName)
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	register.Flags().StringVar(&regName, "name", "", "display name")

	login := &cobra.Command{
		Use:   "login <email>",
		Short: "Look up an existing user by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UserCLI.Login(ctx, args[0])
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UserCLI.Get(ctx, args[0])
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	var newName, newEmail, newAvatar string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update profile fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := userdto.UpdateInput{ID: args[0]}
			if cmd.Flags().Changed("name") {
				input.Name = &newName
			}
			if cmd.Flags().Changed("email") {
				input.Email = &newEmail
			}
			if cmd.Flags().Changed("avatar") {
				input.Avatar = &newAvatar
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UserCLI.Update(ctx, input)
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	update.Flags().StringVar(&newName, "name", "", "new display name")
	update.Flags().StringVar(&newEmail, "email", "", "new email")
	update.Flags().StringVar(&newAvatar, "avatar", "", "new avatar url")

	user.AddCommand(ensure, register, login, show, update)
	return user
}

// ─── chat ────────────────────────────────────────────────────────────────────

func newChatCmd(flags *rootFlags) *cobra.Command {
	chat := &cobra.Command{Use: "chat", Short: "Text conversations with the assistant"}

	var userID, title string
	open := &cobra.Command{
		Use:   "open",
		Short: "Open a chat session and print the greeting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChatCLI.Open(ctx, userID, title)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "session %s\n", out.Session.ID)
				_, _ = fmt.Fprintf(w, "Марк: %s\n", out.Greeting.Content)
				return nil
			})
		},
	}
	open.Flags().StringVar(&userID, "user", "", "user id")
	open.Flags().StringVar(&title, "title", "", "session title")
	_ = open.MarkFlagRequired("user")

	var sayUser string
	say := &cobra.Command{
		Use:   "say <session-id> <text...>",
		Short: "Send a message and print the reply",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChatCLI.Say(ctx, args[0], sayUser, strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Марк: %s\n", out.Reply.Content)
				return nil
			})
		},
	}
	say.Flags().StringVar(&sayUser, "user", "", "user id")
	_ = say.MarkFlagRequired("user")

	var talkUser, talkTitle string
	talk := &cobra.Command{
		Use:   "talk",
		Short: "Interactive conversation; an empty line or EOF ends the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				return runTalk(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout(), talkUser, talkTitle)
			})
		},
	}
	talk.Flags().StringVar(&talkUser, "user", "", "user id")
	talk.Flags().StringVar(&talkTitle, "title", "", "session title")
	_ = talk.MarkFlagRequired("user")

	end := &cobra.Command{
		Use:   "end <session-id>",
		Short: "End a chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChatCLI.End(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ended %s messages=%d\n", out.ID, out.MessageCount)
				return nil
			})
		},
	}

	history := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Print a session's messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				messages, err := app.ChatCLI.History(ctx, args[0])
				if err != nil {
					return err
				}
				for _, m := range messages {
					speaker := "Вы"
					if m.Role == "assistant" {
						speaker = "Марк"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", formatTime(m.Timestamp), speaker, m.Content)
				}
				return nil
			})
		},
	}

	var listUser string
	var listLimit int
	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List a user's chat sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChatCLI.Sessions(ctx, listUser, listLimit)
				if err != nil {
					return err
				}
				if len(out) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range out {
					state := "open"
					if s.EndedAt != nil {
						state = "ended"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  messages=%d  %s\n",
						s.ID, formatTime(s.StartedAt), state, s.MessageCount, s.Title)
				}
				return nil
			})
		},
	}
	sessions.Flags().StringVar(&listUser, "user", "", "user id")
	sessions.Flags().IntVar(&listLimit, "limit", 0, "max sessions (default 10)")
	_ = sessions.MarkFlagRequired("user")

	export := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Write a session transcript as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChatCLI.Export(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d messages to %s\n", out.Messages, out.Path)
				return nil
			})
		},
	}

	chat.AddCommand(open, say, talk, end, history, sessions, export)
	return chat
}

func runTalk(ctx context.Context, app *bootstrap.App, in io.Reader, out io.Writer, userID, title string) error {
	opened, err := app.ChatCLI.Open(ctx, userID, title)
	if err != nil {
		return err
	}
	sessionID := opened.Session.ID
	_, _ = fmt.Fprintf(out, "Марк: %s\n", opened.Greeting.Content)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}
		reply, err := app.ChatCLI.Say(ctx, sessionID, userID, text)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Марк: %s\n", reply.Reply.Content)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if _, err := app.ChatCLI.End(ctx, sessionID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "session %s ended\n", sessionID)
	return nil
}

// ─── call ────────────────────────────────────────────────────────────────────

func newCallCmd(flags *rootFlags) *cobra.Command {
	call := &cobra.Command{Use: "call", Short: "Voice calls"}

	var userID string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a voice call",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CallCLI.Start(ctx, userID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "call %s started %s\n", out.ID, formatTime(out.StartedAt))
				return nil
			})
		},
	}
	start.Flags().StringVar(&userID, "user", "", "user id")
	_ = start.MarkFlagRequired("user")

	var seconds int
	end := &cobra.Command{
		Use:   "end <call-id>",
		Short: "End a voice call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CallCLI.End(ctx, args[0], seconds)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "call %s ended duration=%ds\n", out.ID, out.Duration)
				return nil
			})
		},
	}
	end.Flags().IntVar(&seconds, "duration", 0, "call duration in seconds")

	say := &cobra.Command{
		Use:   "say <call-id> <audio-file>",
		Short: "Send a recorded utterance and print the spoken reply",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read audio: %w", err)
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CallCLI.Say(ctx, args[0], audio, filepath.Base(args[1]))
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if out.Transcript != "" {
					_, _ = fmt.Fprintf(w, "Вы: %s\n", out.Transcript)
				}
				_, _ = fmt.Fprintf(w, "Марк: %s\n", out.Reply)
				return nil
			})
		},
	}

	var listUser string
	var listLimit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List a user's calls, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CallCLI.List(ctx, listUser, listLimit)
				if err != nil {
					return err
				}
				if len(out) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no calls")
					return nil
				}
				for _, c := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %ds\n", c.ID, formatTime(c.StartedAt), c.Status, c.Duration)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&listUser, "user", "", "user id")
	list.Flags().IntVar(&listLimit, "limit", 0, "max calls (default 10)")
	_ = list.MarkFlagRequired("user")

	call.AddCommand(start, end, say, list)
	return call
}

// ─── meditation ──────────────────────────────────────────────────────────────

func newMeditationCmd(flags *rootFlags) *cobra.Command {
	med := &cobra.Command{Use: "meditation", Short: "Guided meditations"}

	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "List available meditations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				for _, item := range app.MeditationCLI.Catalog(ctx) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-28s %3d min  %s\n", item.Title, item.Minutes, item.VideoURL)
				}
				return nil
			})
		},
	}

	var userID string
	start := &cobra.Command{
		Use:   "start <title>",
		Short: "Start timing a meditation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MeditationCLI.Start(ctx, userID, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %q at %s\n", out.Title, formatTime(out.StartedAt))
				return nil
			})
		},
	}
	start.Flags().StringVar(&userID, "user", "", "user id")
	_ = start.MarkFlagRequired("user")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the meditation in progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MeditationCLI.Active(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q for %s since %s\n", out.Title, out.UserID, formatTime(out.StartedAt))
				return nil
			})
		},
	}

	var rating int
	var notes string
	complete := &cobra.Command{
		Use:   "complete",
		Short: "Finish the meditation in progress and log it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r *int
			if cmd.Flags().Changed("rating") {
				r = &rating
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MeditationCLI.Complete(ctx, r, notes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %q %d min\n", out.MeditationTitle, out.Duration)
				return nil
			})
		},
	}
	complete.Flags().IntVar(&rating, "rating", 0, "rating 1-5")
	complete.Flags().StringVar(&notes, "notes", "", "notes")

	abandon := &cobra.Command{
		Use:   "abandon",
		Short: "Drop the meditation in progress without logging it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.MeditationCLI.Abandon(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "abandoned")
				return nil
			})
		},
	}

	var logInput meditationdto.CreateSessionInput
	var logRating int
	logCmd := &cobra.Command{
		Use:   "log <title>",
		Short: "Record a finished meditation directly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logInput.MeditationTitle = strings.Join(args, " ")
			if cmd.Flags().Changed("rating") {
				logInput.Rating = &logRating
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MeditationCLI.Log(ctx, logInput)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s %q %d min\n", out.ID, out.MeditationTitle, out.Duration)
				return nil
			})
		},
	}
	logCmd.Flags().StringVar(&logInput.UserID, "user", "", "user id")
	logCmd.Flags().IntVar(&logInput.Duration, "minutes", 0, "duration in minutes")
	logCmd.Flags().IntVar(&logRating, "rating", 0, "rating 1-5")
	logCmd.Flags().StringVar(&logInput.Notes, "notes", "", "notes")
	_ = logCmd.MarkFlagRequired("user")

	var histUser string
	var histLimit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List logged meditations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MeditationCLI.History(ctx, histUser, histLimit)
				if err != nil {
					return err
				}
				for _, s := range out {
					rating := "-"
					if s.Rating != nil {
						rating = fmt.Sprintf("%d/5", *s.Rating)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-28s %3d min  %s\n", formatTime(s.CompletedAt), s.MeditationTitle, s.Duration, rating)
				}
				return nil
			})
		},
	}
	history.Flags().StringVar(&histUser, "user", "", "user id")
	history.Flags().IntVar(&histLimit, "limit", 0, "max sessions (default 20)")
	_ = history.MarkFlagRequired("user")

	med.AddCommand(catalog, start, status, complete, abandon, logCmd, history)
	return med
}

// ─── quote ───────────────────────────────────────────────────────────────────

func newQuoteCmd(flags *rootFlags) *cobra.Command {
	quote := &cobra.Command{Use: "quote", Short: "Inspirational quotes"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all quotes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuoteCLI.List(ctx)
				if err != nil {
					return err
				}
				for _, q := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  «%s» — %s\n", q.ID, q.Text, q.Author)
				}
				return nil
			})
		},
	}

	var userID string
	var liked bool
	view := &cobra.Command{
		Use:   "view <quote-id>",
		Short: "Record that a quote was viewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuoteCLI.View(ctx, userID, args[0], liked)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "view %s liked=%t\n", out.ID, out.Liked)
				return nil
			})
		},
	}
	view.Flags().StringVar(&userID, "user", "", "user id")
	view.Flags().BoolVar(&liked, "liked", false, "record the view as liked")
	_ = view.MarkFlagRequired("user")

	var likeUser string
	like := &cobra.Command{
		Use:   "like <quote-id>",
		Short: "Toggle the like on a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuoteCLI.ToggleLike(ctx, likeUser, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s liked=%t\n", out.QuoteID, out.Liked)
				return nil
			})
		},
	}
	like.Flags().StringVar(&likeUser, "user", "", "user id")
	_ = like.MarkFlagRequired("user")

	var viewsUser string
	var viewsLimit int
	var onlyLiked bool
	views := &cobra.Command{
		Use:   "views",
		Short: "List a user's viewed quotes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				var (
					out []quotedto.ViewedQuoteOutput
					err error
				)
				if onlyLiked {
					out, err = app.QuoteCLI.Liked(ctx, viewsUser, viewsLimit)
				} else {
					out, err = app.QuoteCLI.Views(ctx, viewsUser, viewsLimit)
				}
				if err != nil {
					return err
				}
				for _, v := range out {
					mark := " "
					if v.Liked {
						mark = "♥"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s — %s\n", mark, formatTime(v.ViewedAt), v.Quote.Text, v.Quote.Author)
				}
				return nil
			})
		},
	}
	views.Flags().StringVar(&viewsUser, "user", "", "user id")
	views.Flags().IntVar(&viewsLimit, "limit", 0, "max views")
	views.Flags().BoolVar(&onlyLiked, "liked", false, "only liked quotes")
	_ = views.MarkFlagRequired("user")

	quote.AddCommand(list, view, like, views)
	return quote
}

// ─── stats ───────────────────────────────────────────────────────────────────

func newStatsCmd(flags *rootFlags) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Progress counters"}

	var userID string
	var refresh bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Show a user's progress overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				ov, err := loadOverview(ctx, app, userID, refresh)
				if err != nil {
					return err
				}
				printOverview(cmd.OutOrStdout(), ov)
				return nil
			})
		},
	}
	show.Flags().StringVar(&userID, "user", "", "user id")
	show.Flags().BoolVar(&refresh, "refresh", false, "recompute counters first")
	_ = show.MarkFlagRequired("user")

	stats.AddCommand(show)
	return stats
}

type overview struct {
	stats      statsdto.StatsOutput
	quotes     quotedto.StatsOutput
	meditation meditationdto.StatsOutput
	activity   []statsdto.ActivityOutput
}

// loadOverview gathers the per-module summaries concurrently. The counters are
// resolved first so a lazily created stat row is not raced by the readers.
func loadOverview(ctx context.Context, app *bootstrap.App, userID string, refresh bool) (overview, error) {
	ov := overview{}
	var err error
	if refresh {
		ov.stats, err = app.StatsCLI.Refresh(ctx, userID)
	} else {
		ov.stats, err = app.StatsCLI.Show(ctx, userID)
	}
	if err != nil {
		return overview{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := app.QuoteCLI.Stats(gctx, userID)
		ov.quotes = out
		return err
	})
	g.Go(func() error {
		out, err := app.MeditationCLI.Stats(gctx, userID)
		ov.meditation = out
		return err
	})
	g.Go(func() error {
		out, err := app.StatsCLI.Activity(gctx, userID, 0)
		ov.activity = out
		return err
	})
	if err := g.Wait(); err != nil {
		return overview{}, err
	}
	return ov, nil
}

func printOverview(w io.Writer, ov overview) {
	s := ov.stats
	_, _ = fmt.Fprintf(w, "chat sessions:      %d\n", s.TotalChatSessions)
	_, _ = fmt.Fprintf(w, "audio calls:        %d\n", s.TotalAudioCalls)
	_, _ = fmt.Fprintf(w, "meditation minutes: %d (%d sessions, avg rating %.1f)\n",
		s.TotalMeditationMinutes, ov.meditation.TotalSessions, ov.meditation.AvgRating)
	_, _ = fmt.Fprintf(w, "quotes viewed:      %d (%d liked)\n", s.TotalQuotesViewed, ov.quotes.TotalLiked)
	if s.LastActivity != nil {
		_, _ = fmt.Fprintf(w, "last activity:      %s\n", formatTime(*s.LastActivity))
	}
	if len(ov.activity) > 0 {
		_, _ = fmt.Fprintln(w, "\nrecent:")
		for _, a := range ov.activity {
			_, _ = fmt.Fprintf(w, "  %s  %s\n", formatTime(a.At), a.Label)
		}
	}
}

// ─── pay ─────────────────────────────────────────────────────────────────────

func newPayCmd(flags *rootFlags) *cobra.Command {
	pay := &cobra.Command{Use: "pay", Short: "Test-mode subscription payments"}

	var userID, description string
	var amount float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a payment and print its confirmation url",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BillingCLI.Create(ctx, userID, amount, description)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", out.ID, out.Status, out.Confirmation.ConfirmationURL)
				return nil
			})
		},
	}
	create.Flags().StringVar(&userID, "user", "", "user id")
	create.Flags().Float64Var(&amount, "amount", 0, "amount")
	create.Flags().StringVar(&description, "description", "", "payment description")
	_ = create.MarkFlagRequired("user")
	_ = create.MarkFlagRequired("amount")

	var confirmUser string
	confirm := &cobra.Command{
		Use:   "confirm <payment-id>",
		Short: "Mark a payment as succeeded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BillingCLI.Confirm(ctx, args[0], confirmUser)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "success=%t\n", out.Success)
				return nil
			})
		},
	}
	confirm.Flags().StringVar(&confirmUser, "user", "", "user id")

	methods := &cobra.Command{
		Use:   "methods",
		Short: "List test payment methods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(_ context.Context, app *bootstrap.App) error {
				for _, m := range app.BillingCLI.Methods() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s: %s\n", m.Action, m.Name, m.Description)
				}
				return nil
			})
		},
	}

	var simUser string
	simulate := &cobra.Command{
		Use:   "simulate <action>",
		Short: "Simulate a payment outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out := app.BillingCLI.Simulate(ctx, args[0], simUser)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "success=%t payment=%s\n", out.Success, out.PaymentID)
				return nil
			})
		},
	}
	simulate.Flags().StringVar(&simUser, "user", "", "user id")

	pay.AddCommand(create, confirm, methods, simulate)
	return pay
}
