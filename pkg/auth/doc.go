// Package auth holds the session token for the signature backend.
//
// The backend issues an opaque bearer token from its login endpoint;
// TokenStore keeps it for the lifetime of the session and plugs straight
// into apiclient.WithTokenSource. Wiring the store's Clear method into
// apiclient.WithOnUnauthorized gives the conventional "401 signs you
// out" behaviour:
//
//	store := auth.NewTokenStore()
//	client, err := apiclient.New(cfg,
//		apiclient.WithTokenSource(store),
//		apiclient.WithOnUnauthorized(store.Clear),
//	)
//
//	token, err := client.LoginWithPassword(ctx, username, password)
//	if err == nil {
//		store.SetToken(token)
//	}
package auth
