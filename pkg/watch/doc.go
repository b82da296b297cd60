// Package watch re-processes game record inputs when they change on disk.
//
// A Watcher wraps an fsnotify watcher. Given a single file it watches the
// file's directory and reacts only to that file, which keeps the watch alive
// across editors that save by rename. Given a directory it watches the tree
// and reacts to files with one of the configured extensions.
//
//	w, err := watch.New(watch.Config{Path: "games.txt"}, logger)
//	if err != nil {
//	    return err
//	}
//	return w.Watch(ctx, func(ctx context.Context, path string) error {
//	    sum, err := gamerec.ParseAndSumFile(path)
//	    ...
//	})
package watch
