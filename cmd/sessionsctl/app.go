package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
	"github.com/zenstudio/sessions-client/internal/core/service"
)

const dateLayout = "2006-01-02"

// views the shell can navigate to, with what each requires of the viewer.
// Navigation always goes through the access guard; a denied check redirects
// to the login prompt without entering the view.
var views = map[string]service.Route{
	"sessions":       {Name: "sessions", RequiresAuth: true},
	"detail":         {Name: "detail", RequiresAuth: true},
	"create":         {Name: "create", RequiresAuth: true, RequiredRole: domain.RoleAdmin},
	"update":         {Name: "update", RequiresAuth: true, RequiredRole: domain.RoleAdmin},
	"delete":         {Name: "delete", RequiresAuth: true, RequiredRole: domain.RoleAdmin},
	"teachers":       {Name: "teachers", RequiresAuth: true},
	"me":             {Name: "me", RequiresAuth: true},
	"delete-account": {Name: "delete-account", RequiresAuth: true},
}

type appDeps struct {
	state       *service.SessionState
	guard       *service.AccessGuard
	coordinator *service.ParticipationCoordinator
	identity    ports.IdentityAPI
	sessions    ports.SessionAPI
	users       ports.UserAPI
	teachers    ports.TeacherAPI
	logger      zerolog.Logger
	out         io.Writer
}

type app struct {
	appDeps
}

func newApp(deps appDeps) *app {
	a := &app{appDeps: deps}

	// The navigation chrome observes the session state like any other
	// subscriber; the replay on subscribe prints the initial banner.
	a.state.Subscribe(func(loggedIn bool) {
		if loggedIn {
			fmt.Fprintln(a.out, "* you are logged in")
		} else {
			fmt.Fprintln(a.out, "* you are logged out")
		}
	})
	return a
}

func (a *app) run(in io.Reader) {
	fmt.Fprintln(a.out, `type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		a.dispatch(fields[0], fields[1:])
	}
}

func (a *app) dispatch(cmd string, args []string) {
	ctx := context.Background()

	var err error
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		err = a.login(ctx, args)
	case "register":
		err = a.register(ctx, args)
	case "logout":
		a.state.LogOut()
	case "sessions":
		err = a.listSessions(ctx)
	case "session":
		err = a.sessionDetail(ctx, args)
	case "join":
		err = a.toggle(ctx, args, a.coordinator.Join)
	case "leave":
		err = a.toggle(ctx, args, a.coordinator.Leave)
	case "create":
		err = a.createSession(ctx, args)
	case "update":
		err = a.updateSession(ctx, args)
	case "delete":
		err = a.deleteSession(ctx, args)
	case "teachers":
		err = a.listTeachers(ctx)
	case "me":
		err = a.me(ctx)
	case "delete-account":
		err = a.deleteAccount(ctx)
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
	}

	if err != nil {
		a.logger.Debug().Err(err).Str("command", cmd).Msg("command failed")
		fmt.Fprintln(a.out, "! "+a.describe(err))
	}
}

func (a *app) printHelp() {
	fmt.Fprint(a.out, `commands:
  login <email> <password>
  register <email> <firstName> <lastName> <password>
  logout
  sessions
  session <id>
  join <id> | leave <id>
  create <name> <yyyy-mm-dd> <teacherId> <description...>   (admin)
  update <id> <name> <yyyy-mm-dd> <teacherId> <description...>   (admin)
  delete <id>   (admin)
  teachers
  me
  delete-account
  quit
`)
}

// navigate runs the access guard for a view. On denial it prints the
// redirect and reports false; the view body must not run.
func (a *app) navigate(view string) bool {
	decision := a.guard.Check(views[view])
	if !decision.Allowed {
		fmt.Fprintf(a.out, "redirected to %s\n", decision.RedirectTo)
		return false
	}
	return true
}

func (a *app) viewer() (domain.SessionIdentity, bool) {
	return a.state.Identity()
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage("login <email> <password>")
	}

	identity, err := a.identity.Login(ctx, ports.LoginInput{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	// Applying the identity to the store is this controller's job, not the
	// identity client's.
	a.state.LogIn(identity)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errUsage("register <email> <firstName> <lastName> <password>")
	}

	err := a.identity.Register(ctx, ports.RegisterInput{
		Email:     args[0],
		FirstName: args[1],
		LastName:  args[2],
		Password:  args[3],
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "registered, you can now log in")
	return nil
}

func (a *app) listSessions(ctx context.Context) error {
	if !a.navigate("sessions") {
		return nil
	}

	sessions, err := a.sessions.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "no sessions scheduled")
		return nil
	}
	for _, s := range sessions {
		fmt.Fprintf(a.out, "#%d  %s  %s  (%d participants)\n",
			s.ID, s.Name, s.Date.Format(dateLayout), len(s.Users))
	}
	return nil
}

func (a *app) sessionDetail(ctx context.Context, args []string) error {
	if !a.navigate("detail") {
		return nil
	}
	id, err := parseID(args, "session <id>")
	if err != nil {
		return err
	}

	viewer, _ := a.viewer()
	view, err := a.coordinator.Load(ctx, id, viewer.UserID)
	if err != nil {
		return err
	}
	a.printView(ctx, view)
	return nil
}

func (a *app) toggle(ctx context.Context, args []string, op func(context.Context, int64, int64) (service.ParticipationView, error)) error {
	if !a.navigate("detail") {
		return nil
	}
	id, err := parseID(args, "join|leave <id>")
	if err != nil {
		return err
	}

	viewer, _ := a.viewer()
	view, err := op(ctx, id, viewer.UserID)
	if err != nil {
		// The displayed status stays whatever the last confirmed fetch
		// showed.
		a.printView(ctx, view)
		return err
	}
	a.printView(ctx, view)
	return nil
}

func (a *app) printView(ctx context.Context, view service.ParticipationView) {
	if view.Session.ID == 0 {
		return
	}
	s := view.Session

	teacherName := ""
	if teacher, err := a.teachers.Get(ctx, s.TeacherID); err == nil {
		teacherName = " with " + teacher.FirstName + " " + teacher.LastName
	}

	status := "not participating"
	if view.Participating {
		status = "participating"
	}
	fmt.Fprintf(a.out, "#%d  %s  %s%s\n%s\n%d participants — you are %s\n",
		s.ID, s.Name, s.Date.Format(dateLayout), teacherName, s.Description, len(s.Users), status)
}

func (a *app) createSession(ctx context.Context, args []string) error {
	if !a.navigate("create") {
		return nil
	}
	in, err := sessionInput(args, "create <name> <yyyy-mm-dd> <teacherId> <description...>")
	if err != nil {
		return err
	}

	session, err := a.sessions.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created session #%d\n", session.ID)
	return nil
}

func (a *app) updateSession(ctx context.Context, args []string) error {
	if !a.navigate("update") {
		return nil
	}
	if len(args) < 1 {
		return errUsage("update <id> <name> <yyyy-mm-dd> <teacherId> <description...>")
	}
	id, err := parseID(args[:1], "update <id> ...")
	if err != nil {
		return err
	}
	in, err := sessionInput(args[1:], "update <id> <name> <yyyy-mm-dd> <teacherId> <description...>")
	if err != nil {
		return err
	}

	session, err := a.sessions.Update(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated session #%d\n", session.ID)
	return nil
}

func (a *app) deleteSession(ctx context.Context, args []string) error {
	if !a.navigate("delete") {
		return nil
	}
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	if err := a.sessions.Delete(ctx, id); err != nil {
		return err
	}
	a.coordinator.Forget(id)
	fmt.Fprintf(a.out, "deleted session #%d\n", id)
	return nil
}

func (a *app) listTeachers(ctx context.Context) error {
	if !a.navigate("teachers") {
		return nil
	}

	teachers, err := a.teachers.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range teachers {
		fmt.Fprintf(a.out, "#%d  %s %s\n", t.ID, t.FirstName, t.LastName)
	}
	return nil
}

func (a *app) me(ctx context.Context) error {
	if !a.navigate("me") {
		return nil
	}

	viewer, _ := a.viewer()
	user, err := a.users.Get(ctx, viewer.UserID)
	if err != nil {
		return err
	}
	role := "user"
	if user.Admin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, role)
	return nil
}

func (a *app) deleteAccount(ctx context.Context) error {
	if !a.navigate("delete-account") {
		return nil
	}

	viewer, _ := a.viewer()
	if err := a.users.Delete(ctx, viewer.UserID); err != nil {
		return err
	}
	a.state.LogOut()
	fmt.Fprintln(a.out, "account deleted")
	return nil
}

// describe turns a classified failure into the user-visible message. The
// core only classifies; rendering happens here at the UI edge.
func (a *app) describe(err error) string {
	switch {
	case domain.IsValidation(err):
		return err.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return "your session has expired, please log in again"
	case errors.Is(err, domain.ErrForbidden):
		return "you do not have permission to do that"
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrConflict):
		return "that change conflicts with the session's current state"
	case errors.Is(err, domain.ErrServer):
		return "the server hit an error, try again later"
	default:
		return "request failed: " + err.Error()
	}
}

func errUsage(usage string) error {
	return &domain.ValidationError{Problems: []string{"usage: " + usage}}
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage(usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errUsage(usage)
	}
	return id, nil
}

func sessionInput(args []string, usage string) (ports.SessionInput, error) {
	if len(args) < 4 {
		return ports.SessionInput{}, errUsage(usage)
	}
	date, err := time.Parse(dateLayout, args[1])
	if err != nil {
		return ports.SessionInput{}, errUsage(usage)
	}
	teacherID, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return ports.SessionInput{}, errUsage(usage)
	}
	return ports.SessionInput{
		Name:        args[0],
		Date:        date,
		TeacherID:   teacherID,
		Description: strings.Join(args[3:], " "),
	}, nil
}
