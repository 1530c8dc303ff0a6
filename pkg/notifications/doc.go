// Package notifications collects the user-facing messages the client
// core produces and streams them to whoever renders them.
//
// Center separates persistence from delivery: every notification is
// stored first (in memory by default, in Redis via NewRedisStorage for
// hosts that want toasts to survive reloads) and then published on a
// live broadcast stream with fire-and-forget semantics.
//
//	center := notifications.NewCenter(nil)
//	defer center.Close()
//
//	sub := center.Subscribe(ctx)
//	go func() {
//		for notif := range sub.Receive() {
//			render(notif)
//		}
//	}()
//
//	center.Success(ctx, "Document signed", `"NDA 2026" was signed by all parties`)
//
// The document status monitor uses Center as its Notifier.
package notifications
