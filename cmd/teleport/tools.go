// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/teleport/payload"
)

var intentHashCmd = &cobra.Command{
	Use:   "intent-hash",
	Short: "Compute the proof hash of a transfer",
	Long: `Encode the transfer fields canonically and print the encoding and its
SHA-256 proof hash. Addresses are hex; 20 byte values are padded as EVM
addresses and 32 byte values as native identifiers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fs := cmd.Flags()
		var (
			i   payload.Intent
			err error
		)
		if i.MintCaller, err = getAddress(fs, "mint-caller"); err != nil {
			return err
		}
		if i.BurnCaller, err = getAddress(fs, "burn-caller"); err != nil {
			return err
		}
		if i.MintToken, err = getAddress(fs, "mint-token"); err != nil {
			return err
		}
		if i.BurnToken, err = getAddress(fs, "burn-token"); err != nil {
			return err
		}
		if i.MintChain, err = getChain(fs, "mint"); err != nil {
			return err
		}
		if i.BurnChain, err = getChain(fs, "burn"); err != nil {
			return err
		}
		amount, err := getUint256(fs, "amount")
		if err != nil {
			return err
		}
		nonce, err := getUint256(fs, "nonce")
		if err != nil {
			return err
		}
		i.Amount, i.Nonce = *amount, *nonce

		encoded, err := i.Bytes()
		if err != nil {
			return err
		}
		id, err := i.ID()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Encoding: 0x%x\n", encoded)
		fmt.Fprintf(out, "Proof hash: %s\n", id)
		fmt.Fprintf(out, "Proof hash (u256): %s\n", id.Uint256().Dec())
		return nil
	},
}

var routeHashCmd = &cobra.Command{
	Use:   "route-hash",
	Short: "Compute the allowance key of a route",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fs := cmd.Flags()
		mintToken, err := getAddress(fs, "mint-token")
		if err != nil {
			return err
		}
		burnToken, err := getAddress(fs, "burn-token")
		if err != nil {
			return err
		}
		mintChain, err := getChain(fs, "mint")
		if err != nil {
			return err
		}
		burnChain, err := getChain(fs, "burn")
		if err != nil {
			return err
		}

		route := payload.RouteID(
			payload.Side{Chain: mintChain, Token: mintToken},
			payload.Side{Chain: burnChain, Token: burnToken},
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Route: %s\n", route)
		return nil
	},
}

var decodeEventCmd = &cobra.Command{
	Use:   "decode-event",
	Short: "Decode an emitted event record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, _ := cmd.Flags().GetString("data")
		b, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
		if err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
		e, err := payload.ParseEvent(b)
		if err != nil {
			return err
		}
		printEvent(cmd, e)
		return nil
	},
}

func printEvent(cmd *cobra.Command, e payload.Event) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n", e.Name())
	switch e := e.(type) {
	case *payload.ProofOfBurn:
		fmt.Fprintf(out, "  Mint token: %s\n", e.MintToken.Render(e.MintChain.Type))
		fmt.Fprintf(out, "  Burn token: %s\n", e.BurnToken.Render(e.BurnChain.Type))
		fmt.Fprintf(out, "  Mint caller: %s\n", e.MintCaller.Render(e.MintChain.Type))
		fmt.Fprintf(out, "  Burn caller: %s\n", e.BurnCaller.Render(e.BurnChain.Type))
		fmt.Fprintf(out, "  Amount: %s\n", e.Amount.Dec())
		fmt.Fprintf(out, "  Nonce: %s\n", e.Nonce.Dec())
		fmt.Fprintf(out, "  Mint chain: %s\n", e.MintChain)
		fmt.Fprintf(out, "  Burn chain: %s\n", e.BurnChain)
		fmt.Fprintf(out, "  Proof hash: %s\n", e.ProofHash)
	case *payload.ProofOfMint:
		fmt.Fprintf(out, "  Mint token: %s\n", e.MintToken.Render(e.MintChain.Type))
		fmt.Fprintf(out, "  Burn token: %s\n", e.BurnToken.Render(e.BurnChain.Type))
		fmt.Fprintf(out, "  Mint caller: %s\n", e.MintCaller.Render(e.MintChain.Type))
		fmt.Fprintf(out, "  Burn caller: %s\n", e.BurnCaller.Render(e.BurnChain.Type))
		fmt.Fprintf(out, "  Amount: %s\n", e.Amount.Dec())
		fmt.Fprintf(out, "  Mint chain: %s\n", e.MintChain)
		fmt.Fprintf(out, "  Burn chain: %s\n", e.BurnChain)
		fmt.Fprintf(out, "  Proof hash: %s\n", e.ProofHash)
	case *payload.ApprovedBurnProof:
		fmt.Fprintf(out, "  Proof hash: %s\n", e.ProofHash)
	}
}

func init() {
	for _, cmd := range []*cobra.Command{intentHashCmd, routeHashCmd} {
		cmd.Flags().String("mint-token", "", "Token on the mint chain (hex)")
		cmd.Flags().String("burn-token", "", "Token on the burn chain (hex)")
		addChainFlags(cmd.Flags(), "mint")
		addChainFlags(cmd.Flags(), "burn")
	}
	intentHashCmd.Flags().String("mint-caller", "", "Recipient on the mint chain (hex)")
	intentHashCmd.Flags().String("burn-caller", "", "Holder on the burn chain (hex)")
	intentHashCmd.Flags().String("amount", "0", "Amount in base units")
	intentHashCmd.Flags().String("nonce", "0", "Burn nonce")

	decodeEventCmd.Flags().StringP("data", "d", "", "Event record (hex)")
}
