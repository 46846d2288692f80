package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/wellplan/config"
	"github.com/kilianp07/wellplan/core/builder"
	"github.com/kilianp07/wellplan/core/metrics"
	"github.com/kilianp07/wellplan/core/model"
	"github.com/kilianp07/wellplan/core/optimize"
	"github.com/kilianp07/wellplan/core/production"
	"github.com/kilianp07/wellplan/core/teams"
	"github.com/kilianp07/wellplan/infra/load"
	"github.com/kilianp07/wellplan/infra/logger"
	inframetrics "github.com/kilianp07/wellplan/infra/metrics"
	"github.com/kilianp07/wellplan/pkg/export"
	"github.com/kilianp07/wellplan/pkg/report"
)

var planOutput string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compile a drilling and workover schedule",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "schedule output file, csv or json")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("plan")

	wells, err := load.Wells(cfg.Wells.Path)
	if err != nil {
		return err
	}
	log.Infof("loaded %d wells from %s", len(wells), cfg.Wells.Path)

	seed := cfg.Planner.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sink, err := inframetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return err
	}

	pool, err := cfg.Teams.Pool()
	if err != nil {
		return err
	}
	movement, err := cfg.Teams.BuildMovement()
	if err != nil {
		return err
	}
	limits, err := cfg.Teams.YearlyLimits()
	if err != nil {
		return err
	}
	manager := teams.NewManager(pool,
		teams.WithMovement(movement),
		teams.WithLimits(limits),
		teams.WithTeamCount(cfg.Teams.TeamCountEnabled()),
		teams.WithLogger(logger.New("teams")),
	)

	profile, err := buildProfile(cfg.Profile)
	if err != nil {
		return err
	}
	policy, err := cfg.Planner.SelectionPolicy()
	if err != nil {
		return err
	}
	start, end := cfg.Planner.Horizon()

	b := builder.NewPlanBuilder(start, end, cfg.Cost.BuildFunction(cfg.Planner),
		builder.WithProfile(profile),
		builder.WithConstraints(cfg.Constraints.Build()...),
		builder.WithPolicy(policy),
		builder.WithClusterOrdering(*cfg.Planner.ClusterOrdering),
		builder.WithDrillTeamPenalty(*cfg.Planner.DrillTeamPenalty),
		builder.WithRand(rng),
		builder.WithLogger(logger.New("builder")),
		builder.WithMetrics(sink),
	)

	plan, err := b.Compile(wells, manager, cfg.Risk.Build(rng))
	if err != nil {
		return err
	}
	log.Infof("compiled plan with %d wells, total profit %.2f", len(plan.WellPlans), plan.TotalProfit())

	if cfg.Planner.Refine {
		annealerOpts := []optimize.Option{optimize.WithLogger(logger.New("annealer"))}
		if rec, ok := sink.(metrics.AnnealingRecorder); ok {
			annealerOpts = append(annealerOpts, optimize.WithMetrics(rec))
		}
		annealer := optimize.NewAnnealer(rng, annealerOpts...)
		plan = annealer.Optimize(plan, manager)
		log.Infof("refined plan, total profit %.2f", plan.TotalProfit())
	}

	if planOutput != "" {
		if err := writeSchedule(planOutput, plan); err != nil {
			return err
		}
		log.Infof("schedule written to %s", planOutput)
	}
	return report.Build(plan).WriteText(cmd.OutOrStdout())
}

func buildProfile(cfg config.ProfileConfig) (production.Profile, error) {
	switch cfg.Type {
	case "linear":
		return production.Linear{}, nil
	case "arps":
		return production.NewArpsDecline(), nil
	case "records":
		records, err := load.Records(cfg.RecordsDir)
		if err != nil {
			return nil, err
		}
		return production.NewFromRecords(records, logger.New("production")), nil
	default:
		return nil, fmt.Errorf("unknown profile type %q", cfg.Type)
	}
}

func writeSchedule(path string, plan *model.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		return export.WriteCSV(f, plan)
	case ".json":
		return export.WriteJSON(f, plan)
	default:
		return fmt.Errorf("unsupported output extension: %q", ext)
	}
}
