package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. args are the
// words typed after the command; handlers prompt for anything missing.
type execIface interface {
	ListVehicles(ctx context.Context, args []string) error
	AddVehicle(ctx context.Context, args []string) error
	SelectVehicle(ctx context.Context, args []string) error
	DeleteVehicle(ctx context.Context, args []string) error
	Info(ctx context.Context, args []string) error
	EditVehicle(ctx context.Context, args []string) error

	ListMileage(ctx context.Context, args []string) error
	AddMileage(ctx context.Context, args []string) error
	EditMileage(ctx context.Context, args []string) error
	DeleteMileage(ctx context.Context, args []string) error

	ListServices(ctx context.Context, args []string) error
	AddService(ctx context.Context, args []string) error
	EditService(ctx context.Context, args []string) error
	DeleteService(ctx context.Context, args []string) error

	ListReminders(ctx context.Context, args []string) error
	AddReminder(ctx context.Context, args []string) error
	EditReminder(ctx context.Context, args []string) error
	DeleteReminder(ctx context.Context, args []string) error

	Status(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error

	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	PDF(ctx context.Context, args []string) error
}

type command struct {
	name string
	help string
	run  func(execIface, context.Context, []string) error
}

var commands = []command{
	{"vehicles", "list vehicles", execIface.ListVehicles},
	{"add-vehicle", "add a vehicle: add-vehicle [auto|moto]", execIface.AddVehicle},
	{"select", "make a vehicle active: select <n|id>", execIface.SelectVehicle},
	{"delete-vehicle", "delete a vehicle and all its records", execIface.DeleteVehicle},
	{"info", "show the active vehicle", execIface.Info},
	{"edit-vehicle", "edit name, brand, model, year, plate, km", execIface.EditVehicle},
	{"km", "list mileage readings", execIface.ListMileage},
	{"add-km", "record a mileage reading", execIface.AddMileage},
	{"edit-km", "edit a mileage reading: edit-km <n|id>", execIface.EditMileage},
	{"delete-km", "delete a mileage reading: delete-km <n|id>", execIface.DeleteMileage},
	{"services", "list maintenance", execIface.ListServices},
	{"add-service", "record maintenance", execIface.AddService},
	{"edit-service", "edit maintenance: edit-service <n|id>", execIface.EditService},
	{"delete-service", "delete maintenance: delete-service <n|id>", execIface.DeleteService},
	{"reminders", "list reminders", execIface.ListReminders},
	{"add-reminder", "add a reminder", execIface.AddReminder},
	{"edit-reminder", "edit a reminder: edit-reminder <n|id>", execIface.EditReminder},
	{"delete-reminder", "delete a reminder: delete-reminder <n|id>", execIface.DeleteReminder},
	{"status", "deadlines of the active vehicle", execIface.Status},
	{"dash", "summary of the active vehicle", execIface.Dashboard},
	{"export", "export the active vehicle to CSV: export [dir]", execIface.Export},
	{"import", "import a CSV file into the active vehicle: import <path>", execIface.Import},
	{"pdf", "write the PDF sheet of the active vehicle: pdf [dir]", execIface.PDF},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, c := range commands {
		fmt.Fprintf(&sb, "  %-16s %s\n", c.name, c.help)
	}
	fmt.Fprintf(&sb, "  %-16s %s\n", "help", "show this list")
	fmt.Fprintf(&sb, "  %-16s %s", "exit | quit", "leave the program")
	return sb.String()
}

// runREPL reads one command per line from reader and dispatches it to a.
//
// The first word is the command, the rest are its arguments. A handler
// error is printed as a single line and the loop continues. The loop ends
// on EOF or on "exit" / "quit". promptFn is printed before each line unless
// it returns "".
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText())
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			c, ok := lookup(name)
			if !ok {
				printlnFn("Unknown command:", name)
				continue
			}
			if err := c.run(a, ctx, args); err != nil {
				printlnFn(notification(err))
			}
		}
	}
}
