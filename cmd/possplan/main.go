package main

import (
	"fmt"
	"os"

	"possplan"
	"possplan/models/gauntlet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	gamma    float64
	maxNodes int
	maxDepth int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "possplan",
	Short: "Possibilistic planner over qualitative uncertainty",
	Long: `possplan searches for action sequences that reach a goal with a
necessity above a chosen threshold, using possibility theory (max-min
propagation) instead of probabilities. Problems are described in YAML
model files; see examples/gauntlet.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <model.yaml>",
	Short: "Search a model file for a gamma-acceptable plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, g, err := loadProblem(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("gamma") {
			g = gamma
		}
		return runSearch(problem, g)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <model.yaml>",
	Short: "Check a model file's structural invariants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, _, err := loadProblem(args[0])
		if err != nil {
			return err
		}
		report(problem)
		if !problem.IsValid() {
			return fmt.Errorf("model %s is not valid", args[0])
		}
		fmt.Println("model is valid")
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <model.yaml>",
	Short: "Emit the reachable-distribution graph as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, g, err := loadProblem(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("gamma") {
			g = gamma
		}
		dot, err := possplan.ReachabilityDOT(problem, g, maxDepth)
		if err != nil {
			return err
		}
		fmt.Print(dot)
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in gauntlet scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := gauntlet.Gamma
		if cmd.Flags().Changed("gamma") {
			g = gamma
		}
		return runSearch(gauntlet.Problem(), g)
	},
}

func loadProblem(path string) (*possplan.Problem, float64, error) {
	mf, err := possplan.LoadModelFile(path)
	if err != nil {
		return nil, 0, err
	}
	problem, err := mf.Build()
	if err != nil {
		return nil, 0, err
	}
	return problem, mf.Gamma, nil
}

func report(problem *possplan.Problem) {
	fmt.Printf("states: %d\n", problem.Space().Size())
	fmt.Printf("initial distribution valid: %v\n", problem.Initial.IsValid())
	for _, a := range problem.Actions {
		fmt.Printf("action %s valid: %v\n", a, a.IsValid(problem.Space()))
	}
	fmt.Printf("goal satisfiable: %v (%d goal states)\n",
		problem.GoalStates().Size() > 0, problem.GoalStates().Size())
}

func runSearch(problem *possplan.Problem, g float64) error {
	if !problem.IsValid() {
		report(problem)
		return fmt.Errorf("problem is not valid")
	}

	planner := possplan.NewPlanner(problem)
	planner.MaxNodes = maxNodes
	planner.Logger = logger

	result, err := planner.FindPlan(g)
	if err != nil {
		return err
	}

	logger.Info("search finished",
		zap.Int("expanded", result.Stats.Expanded),
		zap.Int("enqueued", result.Stats.Enqueued),
		zap.Int("deduped", result.Stats.Deduped),
		zap.Int("frontier_peak", result.Stats.FrontierPeak))

	if !result.Found {
		fmt.Printf("no plan reaches the goal with necessity >= %g\n", g)
		return nil
	}
	fmt.Printf("plan (%d actions, goal necessity %g):\n", len(result.Plan), result.Necessity)
	for i, a := range result.Plan {
		fmt.Printf("  %d. %s\n", i+1, a)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.5, "necessity threshold in [0,1] (overrides the model file)")
	rootCmd.PersistentFlags().IntVar(&maxNodes, "max-nodes", 0, "search node budget (0 = unbounded)")
	graphCmd.Flags().IntVar(&maxDepth, "max-depth", 6, "action-step depth to explore")

	rootCmd.AddCommand(planCmd, validateCmd, graphCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
