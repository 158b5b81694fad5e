// Command hash-generator prints bcrypt hashes for passwords, for seeding
// identities by hand.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-generator <password>...",
		Short: "Print a bcrypt hash for each password",
		Long: `Each password must be 6-12 characters from letters, digits and @$!%*?&,
with at least one lowercase letter, one uppercase letter and one digit.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, raw := range args {
				hash, err := hashPassword(raw)
				if err != nil {
					cmd.PrintErrf("%q: %v\n", raw, err)
					failed++
					continue
				}
				cmd.Printf("%s\t%s\n", raw, hash)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d passwords rejected", failed, len(args))
			}
			return nil
		},
	}
}

func hashPassword(raw string) (string, error) {
	password, err := domain.NewPassword(raw)
	if err != nil {
		return "", err
	}
	return domain.HashPassword(password)
}
