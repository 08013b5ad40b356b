package main

import (
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"folio/internal/handlers"
	"folio/internal/render"
	"folio/internal/repository"
	"folio/internal/services"
	"folio/internal/tasks"
	"folio/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Global filesystems that will be populated by either assets_dev.go or assets_prod.go at startup.
var templatesFS fs.FS
var staticFS fs.FS

func main() {
	addr := flag.String("addr", ":37371", "listen address")
	contentDir := flag.String("content", "content", "content root (blog posts in <content>/blog)")
	dbPath := flag.String("db", "folio.db", "settings database file")
	secret := flag.String("secret", os.Getenv("FOLIO_SESSION_SECRET"), "session cookie secret")
	unsafe := flag.Bool("unsafe", false, "allow insecure cookies")
	flag.Parse()

	// 初始化数据库
	db, err := utils.InitDatabase(*dbPath)
	if err != nil {
		log.Fatal("初始化数据库失败：", err)
	}

	// 初始化依赖
	settingRepo := repository.NewSettingRepository(db)
	settingService := services.NewSettingService(settingRepo)

	postRepo := repository.NewPostRepository(settingService.RepositoryConfig(filepath.Join(*contentDir, "blog")))
	postService := services.NewPostService(postRepo, render.New(), settingService)
	pageService := services.NewPageService(*contentDir)

	scheduler := tasks.NewScheduler(settingService, postService)
	scheduler.Start()

	blogHandler := handlers.NewBlogHandler(postService, pageService)
	adminHandler := handlers.NewAdminHandler(postService, settingService, scheduler)
	authHandler := handlers.NewAuthHandler(settingService)
	apiHandler := handlers.NewAPIHandler(postService)

	// 设置Gin路由
	r := gin.Default()
	htmlRender, err := handlers.NewRenderer(templatesFS)
	if err != nil {
		log.Fatal(err)
	}
	r.HTMLRender = htmlRender

	// 设置会话中间件
	if *secret == "" {
		log.Println("警告: 未设置 -secret，使用默认会话密钥")
		*secret = "folio-secret-key-should-be-changed"
	}
	store := cookie.NewStore([]byte(*secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   !*unsafe,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("folio_session", store))

	// 加载设置的中间件
	r.Use(handlers.SettingsMiddleware(settingService))

	// 静态文件服务
	r.StaticFS("/static", http.FS(staticFS))

	// 页面路由
	r.GET("/", blogHandler.Home)
	r.GET("/about", blogHandler.Page("about"))
	r.GET("/learning", blogHandler.Page("learning"))
	r.GET("/projects", blogHandler.Projects)

	// 博客路由
	r.GET("/blog", blogHandler.Index)
	r.GET("/blog/:slug", blogHandler.ShowPost)
	r.GET("/blog/tag/:tag", blogHandler.Tag)

	// 认证路由
	r.GET("/login", authHandler.ShowLoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// 后台路由
	admin := r.Group("/admin")
	admin.Use(handlers.AuthMiddleware())
	{
		admin.GET("/", adminHandler.Dashboard)
		admin.POST("/audit", adminHandler.RunAudit)
	}

	settings := r.Group("/settings")
	settings.Use(handlers.AuthMiddleware())
	{
		settings.GET("/", adminHandler.ShowSettingsPage)
		settings.POST("/", adminHandler.UpdateSettings)
	}

	// API 路由
	api := r.Group("/api/v1")
	{
		api.GET("/posts", apiHandler.FindPosts)
		api.GET("/posts/:slug", apiHandler.GetPost)
		api.GET("/tags", apiHandler.Tags)
		api.GET("/audit", handlers.APIAuthMiddleware(settingService), apiHandler.Audit)
	}

	// 404处理
	r.NoRoute(blogHandler.NotFound)

	// 启动服务器
	log.Printf("服务器启动于 %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
