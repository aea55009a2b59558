// Package wizard collects deployment inputs interactively.
//
// Two entry points: [RunSetup] walks through the full configuration for the
// init command, and [CollectMissing] prompts only for required values an
// apply run is still missing. Prompts validate non-emptiness so a run can
// never proceed past collection with an empty required value. When stdin is
// not a terminal the wizard refuses to prompt and reports the missing keys
// instead, so unattended runs fail fast rather than hang.
package wizard
