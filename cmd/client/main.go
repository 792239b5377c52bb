// Package main runs the interactive employee-directory dashboard shell.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/staffdeck/internal/client/directory"
	"github.com/atinyakov/staffdeck/internal/config"
	"github.com/atinyakov/staffdeck/internal/logger"
	"github.com/atinyakov/staffdeck/internal/models"
	"github.com/atinyakov/staffdeck/internal/notify"
	"github.com/atinyakov/staffdeck/internal/repository"
	"github.com/atinyakov/staffdeck/internal/service"
)

var (
	version   string
	buildDate string
)

// shell holds the dashboard state for the interactive loop.
type shell struct {
	session   *service.SessionManager
	guard     *service.RouteGuard
	bookmarks *service.BookmarkStore
	filters   *service.FilterEngine
	cache     *directory.Cache
	client    *directory.Client
	themes    *repository.ThemeRepository
	in        *bufio.Scanner

	// path is the current route; gated views are revoked from it the
	// moment the session goes away.
	path string
}

// repl runs the interactive loop, accepting commands to navigate the
// dashboard and manage filters and bookmarks.
func (s *shell) repl() {
	for {
		fmt.Printf("staffdeck%s> ", s.prompt())
		if !s.in.Scan() {
			break
		}
		line := strings.TrimSpace(s.in.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Commands: login <user> <pass>, logout, whoami, open <path>,")
			fmt.Println("  search <text>, dept <name|all>, rating <0-5>, filters, reset,")
			fmt.Println("  departments, bookmark <id>, unbookmark <id>, add, theme <t>, exit")
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <username> <password>")
				continue
			}
			if s.session.Login(args[1], args[2]) {
				s.navigate("/")
			}
		case "logout":
			s.session.Logout()
		case "whoami":
			if u := s.session.Current(); u != nil {
				fmt.Printf("%s (%s) role=%s\n", u.Name, u.Username, u.Role)
			} else {
				fmt.Println("Not signed in")
			}
		case "open":
			if len(args) < 2 {
				fmt.Println("Usage: open <path>")
				continue
			}
			s.navigate(args[1])
		case "search":
			spec := s.filters.Spec()
			spec.Search = strings.Join(args[1:], " ")
			s.filters.SetSpec(spec)
			s.navigate(s.path)
		case "dept":
			if len(args) < 2 {
				fmt.Println("Usage: dept <name|all>")
				continue
			}
			spec := s.filters.Spec()
			spec.Department = strings.Join(args[1:], " ")
			s.filters.SetSpec(spec)
			s.navigate(s.path)
		case "rating":
			if len(args) < 2 {
				fmt.Println("Usage: rating <0-5>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 || n > 5 {
				fmt.Println("rating must be 0..5")
				continue
			}
			spec := s.filters.Spec()
			spec.MinRating = n
			s.filters.SetSpec(spec)
			s.navigate(s.path)
		case "filters":
			spec := s.filters.Spec()
			fmt.Printf("search=%q department=%q minRating=%d\n", spec.Search, spec.Department, spec.MinRating)
		case "reset":
			s.filters.SetSpec(models.DefaultFilterSpec())
			s.navigate(s.path)
		case "departments":
			s.renderDepartments()
		case "bookmark":
			if len(args) < 2 {
				fmt.Println("Usage: bookmark <id>")
				continue
			}
			s.addBookmark(args[1])
		case "unbookmark":
			if len(args) < 2 {
				fmt.Println("Usage: unbookmark <id>")
				continue
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("invalid id")
				continue
			}
			s.bookmarks.Remove(id)
		case "add":
			s.addEmployee()
		case "theme":
			if len(args) < 2 {
				fmt.Printf("Theme: %s\n", s.themes.Load())
				continue
			}
			if err := s.themes.Save(args[1]); err != nil {
				fmt.Println(err)
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func (s *shell) prompt() string {
	if u := s.session.Current(); u != nil {
		return ":" + s.path
	}
	return ""
}

// navigate runs the route guard for path and renders the resulting view.
func (s *shell) navigate(path string) {
	route, ok := s.guard.Resolve(path)
	if !ok {
		fmt.Println("404 — page not found")
		return
	}
	switch s.guard.Check(route) {
	case service.RedirectLogin:
		s.path = "/login"
		fmt.Println("Please sign in: login <username> <password>")
		return
	case service.RedirectUnauthorized:
		s.path = "/unauthorized"
		fmt.Println("You are not authorized to view this page")
		return
	}

	s.path = path
	switch route.Path {
	case "/login":
		fmt.Println("Sign in with: login <username> <password>")
	case "/unauthorized":
		fmt.Println("You are not authorized to view this page")
	case "/":
		s.renderDirectory()
	case "/bookmarks":
		s.renderBookmarks()
	case "/analytics":
		s.renderAnalytics()
	case "/employee/{id}":
		s.renderEmployee(route.EmployeeID)
	}
}

func (s *shell) renderDirectory() {
	fmt.Println("Loading employees...")
	employees, err := s.cache.Employees(context.Background())
	if err != nil {
		fmt.Println("Could not load employees:", err)
		return
	}
	s.filters.SetEmployees(employees)

	filtered := s.filters.Filtered()
	fmt.Printf("Employees (%d of %d):\n", len(filtered), len(employees))
	for _, e := range filtered {
		marker := " "
		if s.bookmarks.IsBookmarked(e.ID) {
			marker = "*"
		}
		fmt.Printf("%s %3d  %-24s %-14s %d/5  %s\n",
			marker, e.ID, e.FullName(), e.Company.Department, e.Rating(), e.Email)
	}
}

func (s *shell) renderBookmarks() {
	list := s.bookmarks.All()
	if len(list) == 0 {
		fmt.Println("No bookmarks yet")
		return
	}
	fmt.Printf("Bookmarks (%d):\n", len(list))
	for _, e := range list {
		fmt.Printf("  %3d  %-24s %-14s %d/5\n", e.ID, e.FullName(), e.Company.Department, e.Rating())
	}
}

func (s *shell) renderAnalytics() {
	fmt.Println("Loading analytics...")
	employees, err := s.cache.Employees(context.Background())
	if err != nil {
		fmt.Println("Could not load employees:", err)
		return
	}
	sum := service.Summarize(employees, s.bookmarks.All())
	fmt.Printf("Employees: %d  Bookmarks: %d  Average rating: %.1f\n",
		sum.TotalEmployees, sum.TotalBookmarks, sum.AverageRating)
	for _, d := range sum.DepartmentStats {
		fmt.Printf("  %-14s %3d employees  avg %.1f\n", d.Name, d.EmployeeCount, d.AverageRating)
	}
}

func (s *shell) renderEmployee(id int) {
	fmt.Println("Loading employee...")
	e, err := s.client.Get(context.Background(), id)
	if err != nil {
		fmt.Println("Could not load employee:", err)
		return
	}
	marker := ""
	if s.bookmarks.IsBookmarked(e.ID) {
		marker = "  [bookmarked]"
	}
	fmt.Printf("%s%s\n", e.FullName(), marker)
	fmt.Printf("  %s, %s at %s\n", e.Company.Title, e.Company.Department, e.Company.Name)
	fmt.Printf("  %s  %s  age %d\n", e.Email, e.Phone, e.Age)
	fmt.Printf("  %s, %s, %s\n", e.Address.Address, e.Address.City, e.Address.State)
	if p := e.Performance; p != nil {
		fmt.Printf("  rating %d/5, %d projects, %d%% completion\n", p.Rating, p.Projects, p.CompletionRate)
	}
}

func (s *shell) renderDepartments() {
	fmt.Println("Loading departments...")
	employees, err := s.cache.Employees(context.Background())
	if err != nil {
		fmt.Println("Could not load employees:", err)
		return
	}
	s.filters.SetEmployees(employees)
	for _, d := range s.filters.Departments() {
		fmt.Println("  " + d)
	}
}

func (s *shell) addBookmark(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("invalid id")
		return
	}
	e, err := s.client.Get(context.Background(), id)
	if err != nil {
		fmt.Println("Could not load employee:", err)
		return
	}
	s.bookmarks.Add(e)
}

// addEmployee prompts for the new employee's fields and submits the record.
func (s *shell) addEmployee() {
	read := func(label string) string {
		fmt.Printf("%s: ", label)
		if !s.in.Scan() {
			return ""
		}
		return strings.TrimSpace(s.in.Text())
	}

	req := models.CreateEmployeeRequest{
		FirstName: read("First name"),
		LastName:  read("Last name"),
		Email:     read("Email"),
		Phone:     read("Phone"),
	}
	req.Age, _ = strconv.Atoi(read("Age"))
	req.Address = models.Address{
		Address: read("Street address"),
		City:    read("City"),
		State:   read("State"),
	}
	fmt.Println("Departments:", strings.Join(directory.Departments(), ", "))
	req.Company = models.Company{
		Name:       "Tech Solutions",
		Department: read("Department"),
		Title:      read("Title"),
	}

	created, err := s.client.Create(context.Background(), req)
	if err != nil {
		fmt.Println("Could not add employee:", err)
		return
	}
	s.cache.Invalidate()
	fmt.Printf("Added %s (id %d)\n", created.FullName(), created.ID)
}

// defaultUsers is the built-in credential table used when no users file is
// present.
func defaultUsers() []service.UserEntry {
	return []service.UserEntry{
		{ID: 1, Username: "admin1", Password: "pass123", Name: "Amelia Hart", Role: models.RoleAdmin},
		{ID: 2, Username: "hr1", Password: "pass123", Name: "Noah Briggs", Role: models.RoleHR},
		{ID: 3, Username: "emp1", Password: "pass123", Name: "Olivia Stone", Role: models.RoleEmployee},
	}
}

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init("warn"); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	kv, err := repository.NewFileStore(options.DataDir)
	if err != nil {
		zapLogger.Fatal("cannot open local storage", zap.Error(err))
	}
	sessionRepo, err := repository.NewSessionRepository(kv, options.DataDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot open session storage", zap.Error(err))
	}
	bookmarkRepo := repository.NewBookmarkRepository(kv, zapLogger)
	themeRepo := repository.NewThemeRepository(kv)

	var users *service.UserStore
	if _, statErr := os.Stat(options.UsersFile); statErr == nil {
		users, err = service.NewUserStoreFromFile(options.UsersFile)
	} else {
		users, err = service.NewUserStore(defaultUsers())
	}
	if err != nil {
		zapLogger.Fatal("cannot load user table", zap.Error(err))
	}

	notifier := notify.Console{}
	session := service.NewSessionManager(users, sessionRepo, notifier)
	session.Restore()

	sh := &shell{
		session:   session,
		guard:     service.NewRouteGuard(session),
		bookmarks: service.NewBookmarkStore(bookmarkRepo, notifier),
		filters:   service.NewFilterEngine(),
		client:    directory.New(options.APIBaseURL, nil),
		themes:    themeRepo,
		in:        bufio.NewScanner(os.Stdin),
		path:      "/login",
	}
	sh.cache = directory.NewCache(sh.client, directory.DefaultLimit)

	// A logout while viewing a gated page revokes access immediately.
	session.OnChange(func(u *models.User) {
		if u == nil && sh.guard.Decide(sh.path) != service.Allow {
			sh.path = "/login"
		}
	})

	if session.IsAuthenticated() {
		fmt.Printf("Welcome back, %s\n", session.Current().Name)
		sh.path = "/"
	} else {
		fmt.Println("Sign in with: login <username> <password>")
	}

	sh.repl()
}
