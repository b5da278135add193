// Package main provides the CLI entrypoint for termfolio.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/termfolio/internal/config"
	"github.com/verte-zerg/termfolio/internal/contact"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/listing"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/projects"
	"github.com/verte-zerg/termfolio/internal/server"
	"github.com/verte-zerg/termfolio/internal/store"
	"github.com/verte-zerg/termfolio/internal/tui"
	"github.com/verte-zerg/termfolio/internal/typewriter"
)

const (
	defaultTheme     = tui.ThemeDark
	defaultNoticeMs  = 4000
	defaultTimeoutMs = 10000
)

var (
	contentPath string
	uiTheme     string
	uiNoIntro   bool
	charDelayMs int
	linePauseMs int

	projectsCategory string

	sendName    string
	sendEmail   string
	sendMessage string

	messagesLast int

	serveAddr string
	serveRate int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "Terminal portfolio",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPortfolioCmd,
	}

	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "portfolio content YAML (default: built-in)")
	rootCmd.Flags().StringVar(&uiTheme, "theme", defaultTheme, "color theme (dark|light)")
	rootCmd.Flags().BoolVar(&uiNoIntro, "no-intro", false, "skip the spotlight intro")
	rootCmd.Flags().IntVar(&charDelayMs, "char-delay", int(typewriter.DefaultCharDelay/time.Millisecond), "typewriter delay per character (ms)")
	rootCmd.Flags().IntVar(&linePauseMs, "line-pause", int(typewriter.DefaultLinePause/time.Millisecond), "typewriter pause between lines (ms)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newProjectsCmd())
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newMessagesCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// loadFileConfig reads the TOML config and any .env files next to it.
func loadFileConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.LoadDotEnv(".", config.DefaultConfigDir()); err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return fileCfg, nil
}

func loadContent(cmd *cobra.Command, fileCfg config.FileConfig) (content.Content, error) {
	applyStringConfig(cmd, "content", &contentPath, fileCfg.UI.Content)
	c, err := content.Load(contentPath)
	if err != nil {
		return content.Content{}, fmt.Errorf("failed to load content: %w", err)
	}
	return c, nil
}

func newContactClient(fileCfg config.FileConfig) *contact.Client {
	endpoint := contact.DefaultEndpoint
	if fileCfg.Contact.Endpoint != nil {
		endpoint = *fileCfg.Contact.Endpoint
	}
	timeoutMs := defaultTimeoutMs
	if fileCfg.Contact.TimeoutMs != nil {
		timeoutMs = *fileCfg.Contact.TimeoutMs
	}
	return contact.NewClient(contact.ClientOptions{
		Endpoint:  endpoint,
		AccessKey: config.ResolveAccessKey(fileCfg.Contact.AccessKey),
		Timeout:   time.Duration(timeoutMs) * time.Millisecond,
	})
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runPortfolioCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "theme", &uiTheme, fileCfg.UI.Theme)
	applyIntConfig(cmd, "char-delay", &charDelayMs, fileCfg.Animation.CharDelayMs)
	applyIntConfig(cmd, "line-pause", &linePauseMs, fileCfg.Animation.LinePauseMs)
	if fileCfg.UI.Intro != nil && !cmd.Flags().Changed("no-intro") {
		uiNoIntro = !*fileCfg.UI.Intro
	}
	noticeMs := defaultNoticeMs
	if fileCfg.UI.NoticeMs != nil {
		noticeMs = *fileCfg.UI.NoticeMs
	}
	if err := validateUIConfig(uiTheme, charDelayMs, linePauseMs, noticeMs); err != nil {
		return err
	}

	c, err := loadContent(cmd, fileCfg)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	logPath := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "termfolio")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	opts := tui.Options{
		Content:   c,
		Submitter: contact.NewSubmitter(newContactClient(fileCfg)),
		Store:     st,
		Theme:     uiTheme,
		Intro:     !uiNoIntro,
		CharDelay: time.Duration(charDelayMs) * time.Millisecond,
		LinePause: time.Duration(linePauseMs) * time.Millisecond,
		NoticeTTL: time.Duration(noticeMs) * time.Millisecond,
	}
	if fileCfg.UI.SectionThreshold != nil {
		opts.SectionThreshold = *fileCfg.UI.SectionThreshold
	}
	if fileCfg.UI.TopThreshold != nil {
		opts.TopThreshold = *fileCfg.UI.TopThreshold
	}
	m, err := tui.NewModel(opts)
	if err != nil {
		return fmt.Errorf("failed to build UI: %w", err)
	}
	defer m.Close()

	mouse := tea.WithMouseCellMotion()
	if opts.Intro {
		mouse = tea.WithMouseAllMotion()
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), mouse)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE:  runProjectsCmd,
	}
	cmd.Flags().StringVar(&projectsCategory, "category", model.CategoryAll, "category filter")
	return cmd
}

func runProjectsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cmd, fileCfg)
	if err != nil {
		return err
	}
	if err := validateCategory(projectsCategory, c.Categories()); err != nil {
		return err
	}
	records := projects.Filter(projectsCategory, c.Projects)
	if err := listing.RenderProjects(cmd.OutOrStdout(), records, listing.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the contact form",
		Args:  cobra.NoArgs,
		RunE:  runSendCmd,
	}
	cmd.Flags().StringVar(&sendName, "name", "", "your name")
	cmd.Flags().StringVar(&sendEmail, "email", "", "your email address")
	cmd.Flags().StringVar(&sendMessage, "message", "", "message body")
	return cmd
}

func runSendCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	submitter := contact.NewSubmitter(newContactClient(fileCfg))
	submitter.SetForm(model.ContactForm{Name: sendName, Email: sendEmail, Message: sendMessage})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	form := contact.Normalize(submitter.Form())
	res := submitter.Submit(ctx)
	if res.Outcome == contact.OutcomeInvalid {
		return fmt.Errorf("invalid message: %w", res.Err)
	}

	entry := model.OutboxEntry{
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Delivered: res.Outcome == contact.OutcomeSent,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if _, err := st.RecordMessage(ctx, entry); err != nil {
		logErrf("failed to record message: %v\n", err)
	}

	if res.Err != nil {
		return fmt.Errorf("failed to send message: %w", res.Err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Message sent successfully!"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List sent and failed messages",
		Args:  cobra.NoArgs,
		RunE:  runMessagesCmd,
	}
	cmd.Flags().IntVar(&messagesLast, "last", 0, "limit to last N messages")
	return cmd
}

func runMessagesCmd(cmd *cobra.Command, _ []string) error {
	if messagesLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	entries, err := st.ListMessages(context.Background(), messagesLast)
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}
	if err := listing.RenderMessages(cmd.OutOrStdout(), entries, listing.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio API over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&serveRate, "rate", server.DefaultRatePerMinute, "contact submissions per minute per client")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	applyIntConfig(cmd, "rate", &serveRate, fileCfg.Server.RatePerMinute)
	if serveRate <= 0 {
		return fmt.Errorf("--rate must be > 0")
	}
	c, err := loadContent(cmd, fileCfg)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	client := newContactClient(fileCfg)
	if config.ResolveAccessKey(fileCfg.Contact.AccessKey) == "" {
		log.Printf("%s is not set; contact submissions will fail", config.AccessKeyEnv)
	}
	srv := server.New(server.Options{
		Content:       c,
		Sender:        client,
		Recorder:      st,
		RatePerMinute: serveRate,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, serveAddr)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateUIConfig(theme string, charDelay, linePause, noticeMs int) error {
	if !tui.ValidTheme(theme) {
		return fmt.Errorf("--theme must be %q or %q", tui.ThemeDark, tui.ThemeLight)
	}
	if charDelay <= 0 {
		return fmt.Errorf("--char-delay must be > 0")
	}
	if linePause <= 0 {
		return fmt.Errorf("--line-pause must be > 0")
	}
	if noticeMs <= 0 {
		return fmt.Errorf("notice-ms must be > 0")
	}
	return nil
}

func validateCategory(category string, categories []string) error {
	for _, c := range categories {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (available: %s)", category, strings.Join(categories, ", "))
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# termfolio configuration
# Uncomment a value to enable it. CLI flags override config values.
# The contact access key can also be set with %s or a .env file.

[contact]
# endpoint = %q
# access-key = ""
# timeout-ms = %d

[animation]
# char-delay-ms = %d
# line-pause-ms = %d

[ui]
# theme = %q              # dark | light
# content = ""            # Path to a portfolio YAML file
# intro = true            # Show the spotlight intro
# notice-ms = %d
# section-threshold = %d   # Viewport row that picks the active section
# top-threshold = %d      # Scroll offset before back-to-top shows

[server]
# addr = %q
# rate-per-minute = %d
`,
		config.AccessKeyEnv,
		contact.DefaultEndpoint,
		defaultTimeoutMs,
		int(typewriter.DefaultCharDelay/time.Millisecond),
		int(typewriter.DefaultLinePause/time.Millisecond),
		defaultTheme,
		defaultNoticeMs,
		tui.DefaultSectionThreshold,
		tui.DefaultTopThreshold,
		server.DefaultAddr,
		server.DefaultRatePerMinute,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
