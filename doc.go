// Package md2mrkdwn converts Markdown text to Slack's mrkdwn dialect.
//
// # Quick Start
//
// Convert with the default configuration:
//
//	out, err := md2mrkdwn.Convert("**Hello** *World*", nil)
//	// out == "*Hello* _World_"
//
// Or build a reusable converter:
//
//	conv, err := md2mrkdwn.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := conv.Convert("# Release Notes")
//
// # Conversion Pipeline
//
// The conversion is a pure text transformation in three stages:
//
//  1. Table extraction: valid pipe tables are replaced with opaque
//     placeholders and wrapped in fenced code blocks (Slack has no table
//     syntax), restored after all other rules have run.
//  2. Line rewriting: each line outside fenced code goes through an
//     ordered sequence of substitutions (emphasis, strikethrough, images,
//     links, task items, bullets, horizontal rules, headers). Inline code
//     is protected first; sentinel placeholders prevent one rule's output
//     from being re-matched by the next.
//  3. Restoration: sentinels resolve to mrkdwn characters and protected
//     spans return verbatim.
//
// Content inside fenced code blocks is always passed through byte for
// byte. Malformed markup is never an error; it passes through unchanged
// or degrades to the nearest sensible rendering.
//
// # Configuration
//
// Config selects replacement glyphs, header/link/table rendering modes,
// and per-feature toggles. It is validated once at construction:
//
//	cfg := md2mrkdwn.DefaultConfig()
//	cfg.HeaderStyle = md2mrkdwn.HeaderStylePlain
//	cfg.LinkFormat = md2mrkdwn.LinkFormatURLOnly
//	conv, err := md2mrkdwn.New(md2mrkdwn.WithConfig(cfg))
//
// Disabling a feature leaves its syntax exactly as found in the input,
// with two documented exceptions: with task lists disabled but lists
// enabled, task items degrade to plain bullets; with images disabled but
// links enabled, image syntax is hidden from the link rule and restored
// verbatim.
package md2mrkdwn
