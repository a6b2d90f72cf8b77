package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/env"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/report"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/supabase"
)

var (
	demoProject   string
	demoReportDir string
	demoTypesOut  string
)

func init() {
	demoCmd.Flags().StringVar(&demoProject, "project", "", "Project id to demo against (default: first visible project)")
	demoCmd.Flags().StringVar(&demoReportDir, "report", "", "Directory for the JSON report (default from config)")
	demoCmd.Flags().StringVar(&demoTypesOut, "types-out", "", "Write generated TypeScript types to this file")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the server's capabilities against a real project",
	Long: `Exercise the Supabase MCP server end to end: organizations, projects,
database inspection, TypeScript type generation, advisors, edge functions,
branches, docs search, and cost estimation.

Each phase runs against live data; a failing phase is reported and counted,
never papered over. Results are written as a JSON report.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	client := newClient()
	server := resolvedServer()

	rep := report.New(report.KindDemo, server)
	fmt.Fprintf(w, "Supabase capability demo (server: %s)\n\n", server)

	var org *supabase.Organization
	runStep(w, rep, "organizations", func() (string, error) {
		orgs, err := client.ListOrganizations(ctx)
		if err != nil {
			return "", err
		}
		if len(orgs) == 0 {
			return "none visible", nil
		}
		org = &orgs[0]
		return fmt.Sprintf("%d visible; first: %s (%s plan)", len(orgs), org.Name, org.Plan), nil
	})

	projectID := demoProject
	runStep(w, rep, "projects", func() (string, error) {
		projects, err := client.ListProjects(ctx)
		if err != nil {
			return "", err
		}
		if projectID == "" && len(projects) > 0 {
			projectID = projects[0].ID
		}
		if projectID == "" {
			return "", fmt.Errorf("no projects visible and no --project given")
		}
		return fmt.Sprintf("%d visible; using %s", len(projects), projectID), nil
	})

	// Project-scoped phases need a target; without one they are recorded
	// as failed rather than silently skipped.
	skip := func(name string) {
		rep.Add(name, false, "skipped: no project selected", 0, nil)
		fmt.Fprintf(w, "  [FAIL] %s: skipped, no project selected\n", name)
	}

	if projectID == "" {
		for _, name := range []string{
			"project details", "tables", "extensions", "migrations",
			"typescript types", "advisors", "edge functions", "branches",
		} {
			skip(name)
		}
	} else {
		runStep(w, rep, "project details", func() (string, error) {
			p, err := client.GetProject(ctx, projectID)
			if err != nil {
				return "", err
			}
			if p == nil {
				return "", fmt.Errorf("project %s returned no usable record", projectID)
			}
			url, _ := client.GetProjectURL(ctx, projectID)
			detail := fmt.Sprintf("%s in %s (%s)", p.Name, p.Region, p.Status)
			if url != "" {
				detail += ", " + url
			}
			return detail, nil
		})

		runStep(w, rep, "tables", func() (string, error) {
			tables, err := client.ListTables(ctx, projectID, "public")
			if err != nil {
				return "", err
			}
			names := make([]string, 0, len(tables))
			for _, t := range tables {
				names = append(names, t.Name)
			}
			if len(names) > 5 {
				names = append(names[:5], "...")
			}
			return fmt.Sprintf("%d in public schema: %s", len(tables), strings.Join(names, ", ")), nil
		})

		runStep(w, rep, "extensions", func() (string, error) {
			exts, err := client.ListExtensions(ctx, projectID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d installed", len(exts)), nil
		})

		runStep(w, rep, "migrations", func() (string, error) {
			migs, err := client.ListMigrations(ctx, projectID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d applied", len(migs)), nil
		})

		runStep(w, rep, "typescript types", func() (string, error) {
			types, err := client.GenerateTypes(ctx, projectID)
			if err != nil {
				return "", err
			}
			if types == "" {
				return "", fmt.Errorf("no types returned")
			}
			lines := strings.Count(types, "\n") + 1
			if demoTypesOut == "" {
				return fmt.Sprintf("%d lines generated", lines), nil
			}
			if err := os.WriteFile(demoTypesOut, []byte(types), 0644); err != nil {
				return "", fmt.Errorf("writing types: %w", err)
			}
			return fmt.Sprintf("%d lines written to %s", lines, demoTypesOut), nil
		})

		runStep(w, rep, "advisors", func() (string, error) {
			security, err := client.GetAdvisors(ctx, projectID, supabase.AdvisorSecurity)
			if err != nil {
				return "", err
			}
			performance, err := client.GetAdvisors(ctx, projectID, supabase.AdvisorPerformance)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d security, %d performance finding(s)", len(security), len(performance)), nil
		})

		runStep(w, rep, "edge functions", func() (string, error) {
			fns, err := client.ListEdgeFunctions(ctx, projectID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d deployed", len(fns)), nil
		})

		runStep(w, rep, "branches", func() (string, error) {
			branches, err := client.ListBranches(ctx, projectID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d database branch(es)", len(branches)), nil
		})
	}

	runStep(w, rep, "docs search", func() (string, error) {
		results, err := client.SearchDocs(ctx, "row level security", 3)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "", fmt.Errorf("no results")
		}
		return fmt.Sprintf("%d result(s); first: %s", len(results), results[0].Title), nil
	})

	if org == nil {
		rep.Add("cost estimation", false, "skipped: no organization visible", 0, nil)
		fmt.Fprintf(w, "  [FAIL] cost estimation: skipped, no organization visible\n")
	} else {
		runStep(w, rep, "cost estimation", func() (string, error) {
			est, err := client.GetCost(ctx, org.ID, supabase.CostProject)
			if err != nil {
				return "", err
			}
			if est == nil {
				return "no estimate returned", nil
			}
			return fmt.Sprintf("new project: %.5f %s %s", est.Amount, est.Currency, est.Recurrence), nil
		})
	}

	runStep(w, rep, "version control", func() (string, error) {
		path, err := exec.LookPath("git")
		if err != nil {
			return "git not found; migration tracking stays server-side", nil
		}
		return fmt.Sprintf("git available at %s for migration tracking", path), nil
	})

	runStep(w, rep, "credentials", func() (string, error) {
		if !env.HasToken() {
			return fmt.Sprintf("%s not set; demo ran unauthenticated", env.TokenVar), nil
		}
		return fmt.Sprintf("%s present (%s)", env.TokenVar,
			env.RedactValue(env.TokenVar, os.Getenv(env.TokenVar))), nil
	})

	rep.Finish()

	dir := demoReportDir
	if dir == "" {
		dir = config.ReportDir()
	}
	path, err := rep.Write(dir)
	if err != nil {
		return fmt.Errorf("writing demo report: %w", err)
	}

	fmt.Fprintf(w, "\n%d/%d phases succeeded (%.1f%%). Report: %s\n",
		rep.Summary.Passed, rep.Summary.Total, rep.Summary.SuccessRate, path)
	return nil
}
