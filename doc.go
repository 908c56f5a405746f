// Package portal is the data layer of a student portal: students sign up, log
// in, and browse records generated for them at signup.
//
// The core functionalities include:
//   - Sample data: a Generator synthesizes the class schedule, grades,
//     billing ledger, academic record and documents of a new account from its
//     course and year level.
//   - Repair: accounts persisted by older versions are brought back to their
//     canonical form at login. Ledger amounts are rewritten as "P5,000.00" and
//     grade units are copied from the class schedule.
//   - Aggregates: GWA, ledger totals (paid and balance against the fixed
//     tuition) and the dashboard of a session.
//   - Store: the accounts and the current session, persisted as JSON through a
//     key/value Storage, under the keys the portal always used.
//
// A SessionManager ties them together and is the only way the shells (the
// studentportal command and its interactive mode) change the portal state.
package portal
