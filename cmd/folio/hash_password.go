package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/btmxh/folio/internal/auth"
	"github.com/spf13/cobra"
)

var emptyPasswordError = errors.New("password must not be empty")

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Prints the bcrypt hash to put in ADMIN_PASSWORD_HASH",
	Long:  "Prints the bcrypt hash to put in ADMIN_PASSWORD_HASH. Without an argument the password is read from the first line of stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return emptyPasswordError
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
