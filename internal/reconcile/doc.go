// Package reconcile restores a saved arrangement onto the live desktop.
//
// A restore runs in two phases. The launch phase starts every application
// named by a spec that is not already running. The matching phase then
// polls the open windows a bounded number of times, assigning each new
// window to the first still-pending spec whose path pattern matches its
// executable, moving it into place, and closing or minimizing windows that
// match nothing. Every spec resolves at most once and every window is
// classified at most once per restore.
package reconcile
