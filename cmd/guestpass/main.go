package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - issue:  Print a signed guest pass per guest
// - link:   Print the personalised invitation link per guest
// - qr:     Write a PNG share code per guest
// - verify: Decode and check a guest pass

func main() {
	issueCmd := flag.NewFlagSet("issue", flag.ExitOnError)
	linkCmd := flag.NewFlagSet("link", flag.ExitOnError)
	qrCmd := flag.NewFlagSet("qr", flag.ExitOnError)
	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)

	flags := guestPassFlags{
		Issue: newGuestFlags(issueCmd),
		Link:  newGuestFlags(linkCmd),
		QR:    newGuestFlags(qrCmd),
		Verify: verifyFlags{
			cmd:        verifyCmd,
			invitation: verifyCmd.String("invitation", "", "Invitation the pass must belong to"),
			pass:       verifyCmd.String("pass", "", "Guest pass to verify"),
		},
	}
	qrOutput := qrCmd.String("output", ".", "Output directory for PNG files")
	flags.QR.output = qrOutput

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type guestPassFlags struct {
	Issue  guestFlags
	Link   guestFlags
	QR     guestFlags
	Verify verifyFlags
}

type guestFlags struct {
	cmd        *flag.FlagSet
	invitation *string
	guest      *string
	guests     *string
	output     *string
}

type verifyFlags struct {
	cmd        *flag.FlagSet
	invitation *string
	pass       *string
}

func newGuestFlags(cmd *flag.FlagSet) guestFlags {
	return guestFlags{
		cmd:        cmd,
		invitation: cmd.String("invitation", "", "Invitation ID"),
		guest:      cmd.String("guest", "", "Single guest name"),
		guests:     cmd.String("guests", "", "File with one guest name per line"),
	}
}

func runSubcommand(ctx context.Context, flags *guestPassFlags) error {
	switch os.Args[1] {
	case "issue":
		return handleGuests(ctx, &flags.Issue, runIssue)
	case "link":
		return handleGuests(ctx, &flags.Link, runLink)
	case "qr":
		return handleGuests(ctx, &flags.QR, runQR)
	case "verify":
		return handleVerify(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

type guestRunner func(ctx context.Context, tools *toolkit, invitationID string, guests []string, flags *guestFlags) error

func handleGuests(ctx context.Context, flags *guestFlags, run guestRunner) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", flags.cmd.Name())
	}
	if *flags.invitation == "" {
		return errors.New("--invitation flag is required")
	}

	guests, err := collectGuests(*flags.guest, *flags.guests)
	if err != nil {
		return err
	}

	tools, err := newToolkit()
	if err != nil {
		return err
	}

	return run(ctx, tools, *flags.invitation, guests, flags)
}

func handleVerify(flags *guestPassFlags) error {
	if err := flags.Verify.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse verify flags")
	}
	if *flags.Verify.pass == "" {
		return errors.New("--pass flag is required for verify command")
	}

	tools, err := newToolkit()
	if err != nil {
		return err
	}

	return runVerify(tools, *flags.Verify.invitation, *flags.Verify.pass)
}

func printUsage() {
	fmt.Println("Usage: guestpass <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  issue     Print a signed guest pass per guest")
	fmt.Println("  link      Print the invitation link per guest")
	fmt.Println("  qr        Write a PNG share code per guest")
	fmt.Println("  verify    Check a guest pass")
	fmt.Println("")
	fmt.Println("Use 'guestpass <command> -h' for more information about a command.")
}

// Command implementations are in run.go
