// Package ui contains the Bubble Tea program that powers the directory
// browser. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, text entry, rendering, and watcher updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While renaming or finding, key presses go to the active form first (the
//     rename text input or the jump query). Otherwise the message is routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, watcher events).
//   - Navigation helpers (navigation.go) move the cursor and toggle directory
//     rows. Every structural change of the tree re-clamps the cursor through
//     afterMutation.
//
// State ownership:
//   - Rows live in fstree.Tree. The model is the only caller that mutates it,
//     always from inside Update.
//   - The cursor and viewport live in internal/ui/state.Navigator, the jump
//     query in internal/ui/state.Finder.
//
// Watcher interactions:
//   - When --watch is on, a backend.Watcher streams debounced directory
//     changes. Update waits for those events and hands them to
//     applyBackendEvent, which refreshes the root or the affected expanded
//     directory and re-syncs the watched set.
package ui
