package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/security"

	"gorm.io/gorm"
)

// runSeed provisions the admin account and starter content. The admin
// user is created only when absent; content tables are seeded only when
// empty, so re-running is safe.
func runSeed(db *gorm.DB) error {
	ctx := context.Background()

	if err := seedAdmin(ctx, db); err != nil {
		return err
	}
	if err := seedPosts(ctx, db); err != nil {
		return err
	}
	if err := seedGallery(ctx, db); err != nil {
		return err
	}
	return seedSocialLinks(ctx, db)
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	var existing model.User
	err := db.WithContext(ctx).Where("email = ?", "admin@aadilrasheed.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := security.HashPassword("password123")
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:     "Aadil Rasheed",
		Email:    "admin@aadilrasheed.com",
		Password: hash,
		Role:     model.RoleAdmin,
	}
	if err = db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}
	log.Info("Admin user created", "email", admin.Email)
	return nil
}

func seedPosts(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []*model.Post{
		{
			Title:       "हम पे लाज़िम है कि हम वक़्त को ज़ाया न करें, आज की क़द्र करेंगे तो ही कल बनता है",
			Slug:        "ham-pe-laazim-hai-ki-ham-waqt-ko-zaaya-na-karein",
			Excerpt:     "हम पे लाज़िम है कि हम वक़्त को ज़ाया न करें, आज की क़द्र करेंगे तो ही कल बनता है ...",
			Content:     "<p>हम पे लाज़िम है कि हम वक़्त को ज़ाया न करें<br/>आज की क़द्र करेंगे तो ही कल बनता है<br/>तपना पड़ता है मुक़द्दर को बनाने के लिए<br/>खारा पानी तभी बरसात का जल बनता है</p>",
			Image:       "https://res.cloudinary.com/djxuqljgr/image/upload/v1742234779/imagr2_l80wqe.jpg",
			Date:        "December 6, 2024",
			Likes:       31,
			IsPublished: true,
		},
		{
			Title:       "पहली मोहब्बत, पहली मोहब्बत होती है",
			Slug:        "detoxing-my-social-media-feed",
			Excerpt:     "आदमी किस तरह हालात से उभर के चलता है, इसका एक अच्छा उदाहरण आपके सामने है...",
			Content:     "<p>पहली मोहब्बत, पहली मोहब्बत होती है<br/>दिल की सरहद पर पहली हिफाज़त होती है</p>",
			Image:       "https://res.cloudinary.com/djxuqljgr/image/upload/v1742233800/image_tqophb.jpg",
			Date:        "January 15, 2025",
			Likes:       24,
			IsPublished: true,
		},
		{
			Title:       "उनको सीने से लगा जो हैं मुख़ालिफ़ तेरे",
			Slug:        "unko-sine-se-laga-jo-hain-mukhalif-tere",
			Excerpt:     "उनको सीने से लगा जो हैं मुख़ालिफ़ तेरे...",
			Content:     "<p>उनको सीने से लगा जो हैं मुख़ालिफ़ तेरे<br/>हाँ तू ऐसा ही रहे, हम तो यही चाहेंगे</p>",
			Image:       "https://res.cloudinary.com/djxuqljgr/image/upload/v1742236807/image3_dak6e6.jpg",
			Date:        "February 28, 2025",
			Likes:       42,
			IsPublished: true,
		},
	}
	return db.WithContext(ctx).Create(&posts).Error
}

func seedGallery(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.GalleryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	images := []string{
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742233800/image_tqophb.jpg",
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742234779/imagr2_l80wqe.jpg",
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742236807/image3_dak6e6.jpg",
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742237648/4_reuuyf.jpg",
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742237648/3_l63y7r.jpg",
		"https://res.cloudinary.com/djxuqljgr/image/upload/v1742237647/2_bqzsdp.jpg",
	}
	descriptions := []string{
		"Beautiful moment captured at sunset",
		"Nature at its best",
		"Peaceful moment",
		"Another beautiful moment",
		"Memories to cherish",
		"Special moments",
	}

	items := make([]*model.GalleryItem, 0, len(images))
	for i, url := range images {
		items = append(items, &model.GalleryItem{
			Title:        fmt.Sprintf("Gallery Image %d", i+1),
			Description:  descriptions[i],
			ImageURL:     url,
			DisplayOrder: i + 1,
			IsActive:     true,
		})
	}
	return db.WithContext(ctx).Create(&items).Error
}

func seedSocialLinks(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.SocialLink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	reels := []string{
		"https://www.instagram.com/reel/DG3G0vZzONi/?utm_source=ig_embed&utm_campaign=loading",
		"https://www.instagram.com/reel/CvHvIy0JKz1/?utm_source=ig_embed&utm_campaign=loading",
		"https://www.instagram.com/reel/DHGLv8oIfh_/?utm_source=ig_embed&utm_campaign=loading",
		"https://www.instagram.com/reel/DHBiGO2Twpl/?utm_source=ig_embed&utm_campaign=loading",
		"https://www.instagram.com/reel/DG8bsq4TZx9/?utm_source=ig_embed&utm_campaign=loading",
		"https://www.instagram.com/reel/DFXozAsTC7A/?utm_source=ig_embed&utm_campaign=loading",
	}

	links := make([]*model.SocialLink, 0, len(reels))
	for i, url := range reels {
		links = append(links, &model.SocialLink{
			Type:         model.SocialTypeInstagram,
			URL:          url,
			DisplayOrder: i + 1,
			IsActive:     true,
		})
	}
	return db.WithContext(ctx).Create(&links).Error
}
