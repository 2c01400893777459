/*
 * MIT License
 *
 * Copyright (c) 2026 jvmtui contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Command jvmtuid is a thin demonstration of this module's Local
// variant: it attaches to one process id, prints every event the
// polling engine publishes, and detaches on SIGINT/SIGTERM. It takes
// flags only — there is no config-file loader here, by design.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jvmtui/core/detect"
	"github.com/jvmtui/core/duration"
	"github.com/jvmtui/core/events"
	"github.com/jvmtui/core/lifecycle"
	"github.com/jvmtui/core/logging"
	"github.com/jvmtui/core/profile"
)

const (
	flagPid        = "pid"
	flagJavaHome   = "java-home"
	flagInterval   = "interval"
	flagCommandTTL = "command-timeout"
)

func main() {
	vpr := viper.New()
	cmd := newRootCommand(vpr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jvmtuid:", err)
		os.Exit(1)
	}
}

func newRootCommand(vpr *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jvmtuid",
		Short: "Attach to one JVM and stream its observability samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), vpr)
		},
	}

	cmd.Flags().Int(flagPid, 0, "target process id to attach to (required)")
	cmd.Flags().String(flagJavaHome, os.Getenv("JAVA_HOME"), "JDK home to search for diagnostic tools before PATH")
	cmd.Flags().Duration(flagInterval, 2*time.Second, "polling cadence")
	cmd.Flags().Duration(flagCommandTTL, 5*time.Second, "per-call command deadline")

	for _, name := range []string{flagPid, flagJavaHome, flagInterval, flagCommandTTL} {
		_ = vpr.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

func run(ctx context.Context, vpr *viper.Viper) error {
	pid := vpr.GetInt(flagPid)
	if pid <= 0 {
		return fmt.Errorf("--%s is required and must be a positive process id", flagPid)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.New(os.Stderr, logging.InfoLevel)

	det := detect.New(vpr.GetString(flagJavaHome), log)
	tools, err := det.Detect(ctx)
	if err != nil {
		return err
	}

	cfg := profile.NewPollingConfig(
		duration.ParseDuration(vpr.GetDuration(flagInterval)),
		profile.DefaultHistoryCapacity,
		duration.ParseDuration(vpr.GetDuration(flagCommandTTL)),
	)

	session, err := lifecycle.Build(ctx, profile.NewLocal(pid), cfg, &tools, log)
	if err != nil {
		return err
	}
	defer session.Stop()

	fmt.Printf("attached to pid %d (state=%s)\n", pid, session.State())

	consumeEvents(ctx, session.Events())
	return nil
}

// consumeEvents prints every event until ctx is cancelled or the
// channel is closed, whichever comes first.
func consumeEvents(ctx context.Context, ch *events.Channel) {
	for {
		e, ok := ch.Recv(ctx)
		if !ok {
			return
		}
		switch e.Kind {
		case events.KindUpdated:
			fmt.Println("sample updated")
		case events.KindWarn:
			fmt.Println("warning:", e.Message)
		case events.KindError:
			fmt.Printf("error (%s): %s\n", e.ErrorKind, e.Message)
		case events.KindDisconnected:
			fmt.Println("disconnected")
			return
		}
	}
}
