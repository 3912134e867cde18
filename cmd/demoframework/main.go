// Package main runs a small framework against a Mesos master through
// the bridge: it registers, declines every resource offer it is
// handed, and logs task status updates until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/vladimirvivien/schedbridge"
)

var log = logrus.New()

type config struct {
	Master        string  `env:"DEMO_MASTER"         envDefault:"127.0.0.1:5050"`
	FrameworkName string  `env:"DEMO_FRAMEWORK_NAME" envDefault:"demo-framework"`
	FrameworkUser string  `env:"DEMO_FRAMEWORK_USER"`
	RefuseSeconds float64 `env:"DEMO_REFUSE_SECONDS" envDefault:"5"`
}

func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Master, "master", cfg.Master, "mesos master address")
	fs.StringVar(&cfg.FrameworkName, "name", cfg.FrameworkName, "framework name")
	fs.StringVar(&cfg.FrameworkUser, "user", cfg.FrameworkUser, "framework user, defaults to the current user")
	fs.Float64Var(&cfg.RefuseSeconds, "refuse-seconds", cfg.RefuseSeconds, "seconds the master withholds declined offers")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Demo framework failed: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	mailbox := schedbridge.NewMailbox()
	defer mailbox.Close()

	frameworkInfo, err := schedbridge.DefaultCodec.Marshal(
		schedbridge.NewFrameworkInfo(cfg.FrameworkUser, cfg.FrameworkName, nil),
	)
	if err != nil {
		return fmt.Errorf("encode framework info: %w", err)
	}

	handle, err := schedbridge.Init(mailbox, frameworkInfo, cfg.Master, nil)
	if err != nil {
		return fmt.Errorf("initialize bridge: %w", err)
	}
	defer handle.Destroy()

	stat, err := handle.Start()
	if err != nil || stat != schedbridge.StatusDriverRunning {
		return fmt.Errorf("start driver: status [%s], %v", stat, err)
	}
	log.Infof("Demo framework [%s] connecting to master [%s].", cfg.FrameworkName, cfg.Master)

	filters, err := schedbridge.DefaultCodec.Marshal(schedbridge.NewFilters(cfg.RefuseSeconds))
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down the demo framework.")
			handle.Stop(false)
			return nil
		case ev, ok := <-mailbox.C():
			if !ok {
				return nil
			}
			if done := handleEvent(handle, ev, filters); done {
				return fmt.Errorf("driver error: %s", ev.Data)
			}
		}
	}
}

// handleEvent reacts to one bridge event. It reports true once the
// driver posted an error, which terminates the framework.
func handleEvent(handle *schedbridge.Handle, ev schedbridge.Event, filters []byte) bool {
	switch ev.Kind {
	case schedbridge.EventRegistered:
		var frameworkID schedbridge.FrameworkID
		if err := schedbridge.DefaultCodec.Unmarshal(ev.Payloads[0], &frameworkID); err != nil {
			log.Errorf("Unable to decode the framework ID: %v", err)
			return false
		}
		log.Infof("Registered with the master as [%s].", frameworkID.Value)

	case schedbridge.EventReregistered:
		log.Info("Re-registered with a new master.")

	case schedbridge.EventDisconnected:
		log.Warn("Disconnected from the master.")

	case schedbridge.EventResourceOffers:
		var offer schedbridge.Offer
		if err := schedbridge.DefaultCodec.Unmarshal(ev.Payloads[0], &offer); err != nil {
			log.Errorf("Unable to decode the offer: %v", err)
			return false
		}
		declineOffer(handle, &offer, filters)

	case schedbridge.EventStatusUpdate:
		var status schedbridge.TaskStatus
		if err := schedbridge.DefaultCodec.Unmarshal(ev.Payloads[0], &status); err != nil {
			log.Errorf("Unable to decode the task status: %v", err)
			return false
		}
		if status.TaskID == nil {
			log.Warn("Ignoring a task status without a task ID.")
			return false
		}
		log.Infof("Task [%s] is now [%s].", status.TaskID.Value, status.State)

	case schedbridge.EventFrameworkMessage:
		log.Infof("Executor message received: %s", ev.Data)

	case schedbridge.EventError:
		log.Errorf("Driver reported an error: %s", ev.Data)
		return true

	default:
		log.Infof("Ignoring [%s] event.", ev.Kind)
	}
	return false
}

func declineOffer(handle *schedbridge.Handle, offer *schedbridge.Offer, filters []byte) {
	if offer.ID == nil {
		log.Warn("Ignoring an offer without an offer ID.")
		return
	}
	offerID, err := schedbridge.DefaultCodec.Marshal(offer.ID)
	if err != nil {
		log.Errorf("Unable to encode the offer ID: %v", err)
		return
	}
	stat, err := handle.DeclineOffer(offerID, filters)
	if err != nil {
		log.Errorf("Failed to decline offer [%s]: %v", offer.ID.Value, err)
		return
	}
	log.Infof("Declined offer [%s] from [%s], driver status [%s].", offer.ID.Value, offer.Hostname, stat)
}
