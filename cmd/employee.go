package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"abtrack/internal/output"
	"abtrack/internal/validate"
)

// employeeCmd represents the employee command.
var employeeCmd = &cobra.Command{
	Use:     "employee",
	Aliases: []string{"employees", "emp"},
	Short:   "Manage employee records",
	Long: `List employee records or manage them. Inactive employees are hidden from
table views and tallies but retained in storage.

Examples:
  abtrack employee list
  abtrack employee add "Alice"
  abtrack employee add "Bob" --inactive
  abtrack employee deactivate "Bob"`,
	RunE: runEmployeeList,
}

// Employee subcommand flags.
var employeeAddFlagInactive bool

// employeeListCmd lists all employee records.
var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employee records",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeList,
}

// employeeAddCmd adds a new employee record.
var employeeAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new employee record",
	Long: `Add a new employee record with an empty absence list. The employee id is
assigned automatically (one greater than the highest existing id) and is
never reused within a session.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeAdd,
}

// employeeActivateCmd marks an employee active.
var employeeActivateCmd = &cobra.Command{
	Use:   "activate NAME",
	Short: "Mark an employee active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmployeeSetActive(args[0], true)
	},
}

// employeeDeactivateCmd marks an employee inactive.
var employeeDeactivateCmd = &cobra.Command{
	Use:   "deactivate NAME",
	Short: "Mark an employee inactive",
	Long: `Mark an employee inactive. The record and its absence entries are kept in
storage; only table views and tallies exclude it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmployeeSetActive(args[0], false)
	},
}

func init() {
	employeeAddCmd.Flags().BoolVar(&employeeAddFlagInactive, "inactive", false,
		"Add the employee as inactive")

	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeActivateCmd)
	employeeCmd.AddCommand(employeeDeactivateCmd)
	rootCmd.AddCommand(employeeCmd)
}

func runEmployeeList(cmd *cobra.Command, args []string) error {
	employees := ctx.Ledger.Employees()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEmployeesResponse(employees))
	}

	cli := ctx.CLIFormatter()
	if len(employees) == 0 {
		cli.Muted("No employees yet. Add one with 'abtrack employee add NAME'.")
		return nil
	}

	cli.Title("Employees")
	for _, emp := range employees {
		status := "active"
		if !emp.Active {
			status = "inactive"
		}
		cli.Printf("%s  #%s (%s, %d absences)\n",
			cli.EmployeeName(emp.Name), strconv.Itoa(emp.EmployeeID), status, len(emp.Absences))
	}
	return nil
}

func runEmployeeAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validate.EmployeeName(name); err != nil {
		return err
	}

	emp, err := ctx.Ledger.AddEmployee(name, !employeeAddFlagInactive)
	if err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEmployeeOutput(emp))
	}
	ctx.CLIFormatter().PrintEmployeeAdded(emp)
	return nil
}

func runEmployeeSetActive(name string, active bool) error {
	if err := ctx.Ledger.SetActive(name, active); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	emp := ctx.Ledger.FindEmployee(name)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEmployeeOutput(emp))
	}

	cli := ctx.CLIFormatter()
	if active {
		cli.Success("Activated " + cli.EmployeeName(name))
	} else {
		cli.Success("Deactivated " + cli.EmployeeName(name))
	}
	return nil
}
